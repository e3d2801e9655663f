package v1alpha1

import (
	"net/http"
	"strconv"

	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/handlers/v1alpha1/mappers"
	"github.com/feedrate/feedrate-calculator/internal/handlers/validator"
	"github.com/feedrate/feedrate-calculator/pkg/requestid"
	"github.com/go-chi/render"
)

// (GET /api/v1/options)
func (h *ServiceHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, mappers.OptionsToApi(h.calculatorSrv.Options()))
}

// (POST /api/v1/calculate)
func (h *ServiceHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	tracer := h.logger.WithContext(r.Context()).Operation("calculate_request").Build()

	var body v1alpha1.CalculateRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		tracer.Error(err).Log()
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, v1alpha1.Error{
			Message:   "invalid request body: " + err.Error(),
			RequestId: requestid.FromContextPtr(r.Context()),
		})
		return
	}

	v := validator.NewValidator()
	v.Register(validator.NewCalculationValidationRules()...)
	if err := v.Struct(body); err != nil {
		tracer.Error(err).Log()
		writeError(w, r, err)
		return
	}

	in, err := mappers.CalculateRequestToInput(body)
	if err != nil {
		tracer.Error(err).Log()
		writeError(w, r, err)
		return
	}

	result, err := h.calculatorSrv.Calculate(r.Context(), in)
	if err != nil {
		tracer.Error(err).Log()
		writeError(w, r, err)
		return
	}

	// the breakdown is returned unless the caller opts out with ?breakdown=false
	withBreakdown := true
	if raw := r.URL.Query().Get("breakdown"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			withBreakdown = b
		}
	}

	tracer.Success().WithBool("breakdown", withBreakdown).Log()
	render.JSON(w, r, mappers.CalculationToApi(result, withBreakdown))
}
