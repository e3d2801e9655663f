package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	subsystem = "feedrate"

	calculationsTotal   = "calculations_total"
	clampedFeedsTotal   = "clamped_feed_rates_total"
	rejectedInputsTotal = "rejected_inputs_total"
	chartsTotal         = "charts_total"

	materialLabel = "material"
	machineLabel  = "machine"
	unitLabel     = "unit"
	reasonLabel   = "reason"
	formatLabel   = "format"
)

var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      calculationsTotal,
		Help:      "number of cutting parameter calculations",
	},
	[]string{materialLabel, machineLabel, unitLabel},
)

var clampedFeedsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      clampedFeedsTotal,
		Help:      "number of calculations whose feed rate hit the machine limit",
	},
	[]string{materialLabel, machineLabel},
)

var rejectedInputsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      rejectedInputsTotal,
		Help:      "number of calculation requests rejected before computing",
	},
	[]string{reasonLabel},
)

var chartsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      chartsTotal,
		Help:      "number of generated feed charts",
	},
	[]string{formatLabel},
)

func IncreaseCalculationsTotalMetric(material, machine, unit string) {
	calculationsTotalMetric.With(prometheus.Labels{
		materialLabel: material,
		machineLabel:  machine,
		unitLabel:     unit,
	}).Inc()
}

func IncreaseClampedFeedsTotalMetric(material, machine string) {
	clampedFeedsTotalMetric.With(prometheus.Labels{
		materialLabel: material,
		machineLabel:  machine,
	}).Inc()
}

func IncreaseRejectedInputsTotalMetric(reason string) {
	rejectedInputsTotalMetric.With(prometheus.Labels{reasonLabel: reason}).Inc()
}

func IncreaseChartsTotalMetric(format string) {
	chartsTotalMetric.With(prometheus.Labels{formatLabel: format}).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func init() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(clampedFeedsTotalMetric)
	prometheus.MustRegister(rejectedInputsTotalMetric)
	prometheus.MustRegister(chartsTotalMetric)
}
