package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/feedrate/feedrate-calculator/internal/feeds"
	"github.com/feedrate/feedrate-calculator/internal/service/chart/csv"
	"github.com/feedrate/feedrate-calculator/internal/service/chart/html"
	"github.com/feedrate/feedrate-calculator/internal/service/chart/types"
	"github.com/feedrate/feedrate-calculator/internal/service/chart/xlsx"
	"github.com/feedrate/feedrate-calculator/pkg/log"
	"github.com/feedrate/feedrate-calculator/pkg/metrics"
)

type ChartFormat = types.ChartFormat
type ChartOptions = types.ChartOptions
type ChartData = types.ChartData

const (
	ChartFormatCSV  = types.ChartFormatCSV
	ChartFormatHTML = types.ChartFormatHTML
	ChartFormatXLSX = types.ChartFormatXLSX
)

const (
	DefaultChartRPMStep = 1000.0
	DefaultChartMaxRows = 200
)

// Chart is a rendered feed chart ready to be written to a file or a response.
type Chart struct {
	Format      ChartFormat
	ContentType string
	Filename    string
	Content     []byte
}

// ChartService sweeps every material over a range of spindle speeds.
type ChartService struct {
	renderers map[types.ChartFormat]types.ChartRenderer
	maxRows   int
	now       func() time.Time
	logger    *log.StructuredLogger
}

func NewChartService(maxRows int) *ChartService {
	if maxRows <= 0 {
		maxRows = DefaultChartMaxRows
	}
	s := &ChartService{
		renderers: make(map[types.ChartFormat]types.ChartRenderer),
		maxRows:   maxRows,
		now:       time.Now,
		logger:    log.NewDebugLogger("chart_service"),
	}
	for _, r := range []types.ChartRenderer{csv.NewRenderer(), html.NewRenderer(), xlsx.NewRenderer()} {
		s.renderers[r.SupportedFormat()] = r
	}
	return s
}

// ChartFormats lists the formats every ChartService can render.
func ChartFormats() []ChartFormat {
	return []ChartFormat{ChartFormatCSV, ChartFormatHTML, ChartFormatXLSX}
}

// Generate builds the chart data for opts and renders it.
func (s *ChartService) Generate(ctx context.Context, opts ChartOptions) (*Chart, error) {
	tracer := s.logger.WithContext(ctx).Operation("generate_chart").
		WithString("format", string(opts.Format)).
		WithString("machine", opts.Machine).
		WithString("cutter", opts.Cutter).
		Build()

	renderer, exists := s.renderers[opts.Format]
	if !exists {
		err := NewErrUnsupportedFormat(string(opts.Format))
		tracer.Error(err).Log()
		return nil, err
	}

	data, err := s.BuildData(opts)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}
	tracer.Step("built_data").WithInt("materials", len(data.Materials)).WithInt("rows", len(data.Materials[0].Rows)).Log()

	content, err := renderer.Render(data)
	if err != nil {
		tracer.Error(err).Log()
		return nil, fmt.Errorf("failed to render %s chart: %w", opts.Format, err)
	}

	metrics.IncreaseChartsTotalMetric(string(opts.Format))
	tracer.Success().WithInt("bytes", len(content)).Log()

	return &Chart{
		Format:      opts.Format,
		ContentType: renderer.ContentType(),
		Filename:    fmt.Sprintf("feed-chart-%s.%s", data.Generated.Format("20060102-150405"), opts.Format),
		Content:     content,
	}, nil
}

// BuildData computes every row of the chart. Missing range fields take their defaults.
func (s *ChartService) BuildData(opts ChartOptions) (*ChartData, error) {
	cutter, ok := feeds.LookupCutWidth(opts.Cutter)
	if !ok {
		return nil, NewErrUnknownOption("cutter", opts.Cutter)
	}

	opts = withRangeDefaults(opts)
	rpms, err := s.spindleSpeeds(opts)
	if err != nil {
		return nil, err
	}

	base := feeds.Input{
		Machine:    opts.Machine,
		CutWidth:   cutter.Class,
		Flutes:     opts.Flutes,
		Aggression: opts.Aggression,
		Unit:       opts.Unit,
		RPM:        rpms[0],
	}

	data := &ChartData{Options: opts, Cutter: cutter, Generated: s.now()}
	for _, material := range feeds.Materials() {
		in := base
		in.Material = material.Name
		if err := Validate(in); err != nil {
			return nil, err
		}

		mc := types.MaterialChart{Material: material.Name}
		for _, rpm := range rpms {
			in.RPM = rpm
			b, _ := feeds.Explain(in)
			mc.Rows = append(mc.Rows, types.ChartRow{RPM: rpm, Result: b.Result, Clamped: b.Clamped})
		}
		data.Materials = append(data.Materials, mc)
	}
	return data, nil
}

func withRangeDefaults(opts ChartOptions) ChartOptions {
	if opts.RPMFrom == 0 {
		opts.RPMFrom = feeds.MinRPM
	}
	if opts.RPMTo == 0 {
		opts.RPMTo = feeds.MaxRPM
	}
	if opts.RPMStep == 0 {
		opts.RPMStep = DefaultChartRPMStep
	}
	return opts
}

func (s *ChartService) spindleSpeeds(opts ChartOptions) ([]float64, error) {
	if err := validateRPM(opts.RPMFrom); err != nil {
		return nil, err
	}
	if err := validateRPM(opts.RPMTo); err != nil {
		return nil, err
	}
	if opts.RPMFrom > opts.RPMTo {
		return nil, NewErrInvalidChartRange("rpm range start %g is above its end %g", opts.RPMFrom, opts.RPMTo)
	}
	if math.IsNaN(opts.RPMStep) || opts.RPMStep <= 0 {
		return nil, NewErrInvalidChartRange("rpm step must be positive, got %g", opts.RPMStep)
	}

	// compared as a float: a tiny step overflows int
	rows := math.Floor((opts.RPMTo-opts.RPMFrom)/opts.RPMStep+1e-9) + 1
	if rows > float64(s.maxRows) {
		return nil, NewErrInvalidChartRange("chart would have %g rows per material, the limit is %d", rows, s.maxRows)
	}
	n := int(rows)

	rpms := make([]float64, n)
	for i := range rpms {
		rpms[i] = opts.RPMFrom + float64(i)*opts.RPMStep
	}
	return rpms, nil
}
