package v1alpha1

import (
	"errors"
	"net/http"

	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/handlers/validator"
	"github.com/feedrate/feedrate-calculator/internal/service"
	"github.com/feedrate/feedrate-calculator/pkg/log"
	"github.com/feedrate/feedrate-calculator/pkg/requestid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ServiceHandler struct {
	calculatorSrv *service.CalculatorService
	chartSrv      *service.ChartService
	logger        *log.StructuredLogger
}

func NewServiceHandler(calculatorService *service.CalculatorService, chartService *service.ChartService) *ServiceHandler {
	return &ServiceHandler{
		calculatorSrv: calculatorService,
		chartSrv:      chartService,
		logger:        log.NewDebugLogger("handlers"),
	}
}

// HandlerFromMux mounts every operation of the API on r.
func HandlerFromMux(h *ServiceHandler, r chi.Router) http.Handler {
	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", h.GetInfo)
		r.Get("/options", h.GetOptions)
		r.Post("/calculate", h.Calculate)
		r.Get("/chart", h.GetChart)
	})
	return r
}

// statusFor maps service and validation errors to 400, everything else to 500.
func statusFor(err error) int {
	var (
		invalidSelection *validator.ErrInvalidSelection
		unknownOption    *service.ErrUnknownOption
		rpmOutOfRange    *service.ErrRPMOutOfRange
		invalidRange     *service.ErrInvalidChartRange
		unsupported      *service.ErrUnsupportedFormat
	)
	switch {
	case errors.As(err, &invalidSelection),
		errors.As(err, &unknownOption),
		errors.As(err, &rpmOutOfRange),
		errors.As(err, &invalidRange),
		errors.As(err, &unsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	render.Status(r, status)
	render.JSON(w, r, v1alpha1.Error{
		Message:   message,
		RequestId: requestid.FromContextPtr(r.Context()),
	})
}
