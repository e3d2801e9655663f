package v1alpha1

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/handlers/v1alpha1/mappers"
	"github.com/feedrate/feedrate-calculator/internal/handlers/validator"
)

// (GET /api/v1/chart)
func (h *ServiceHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	tracer := h.logger.WithContext(r.Context()).Operation("chart_request").Build()

	params, err := parseChartParams(r.URL.Query())
	if err != nil {
		tracer.Error(err).Log()
		writeError(w, r, err)
		return
	}

	v := validator.NewValidator()
	v.Register(validator.NewChartValidationRules()...)
	if err := v.Struct(params); err != nil {
		tracer.Error(err).Log()
		writeError(w, r, err)
		return
	}

	opts, err := mappers.ChartParamsToOptions(params)
	if err != nil {
		tracer.Error(err).Log()
		writeError(w, r, err)
		return
	}

	chart, err := h.chartSrv.Generate(r.Context(), opts)
	if err != nil {
		tracer.Error(err).Log()
		writeError(w, r, err)
		return
	}

	tracer.Success().WithString("filename", chart.Filename).WithInt("bytes", len(chart.Content)).Log()

	w.Header().Set("Content-Type", chart.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", chart.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(chart.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(chart.Content)
}

func parseChartParams(q url.Values) (v1alpha1.GetChartParams, error) {
	var (
		params v1alpha1.GetChartParams
		err    error
	)

	params.Machine = optionalString(q, "machine")
	params.Cutter = optionalString(q, "cutter")
	params.Aggression = optionalString(q, "aggression")
	params.Unit = optionalString(q, "unit")
	if f := optionalString(q, "format"); f != nil {
		format := v1alpha1.ChartFormat(*f)
		params.Format = &format
	}

	if raw := q.Get("flutes"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return params, validator.NewErrInvalidSelection([]string{"flutes"}, "invalid flutes %q", raw)
		}
		params.Flutes = &n
	}
	if params.RpmFrom, err = optionalFloat(q, "rpmFrom"); err != nil {
		return params, err
	}
	if params.RpmTo, err = optionalFloat(q, "rpmTo"); err != nil {
		return params, err
	}
	if params.RpmStep, err = optionalFloat(q, "rpmStep"); err != nil {
		return params, err
	}
	return params, nil
}

func optionalString(q url.Values, name string) *string {
	if !q.Has(name) {
		return nil
	}
	v := q.Get(name)
	return &v
}

func optionalFloat(q url.Values, name string) (*float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, validator.NewErrInvalidSelection([]string{name}, "invalid %s %q", name, raw)
	}
	return &f, nil
}
