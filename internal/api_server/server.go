package apiserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thoas/go-funk"

	api "github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/config"
	handlers "github.com/feedrate/feedrate-calculator/internal/handlers/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/service"
	"github.com/feedrate/feedrate-calculator/pkg/metrics"
	"github.com/feedrate/feedrate-calculator/pkg/middleware"
	"github.com/feedrate/feedrate-calculator/pkg/requestid"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	listener net.Listener
}

// New returns a new instance of the feed rate API server.
func New(
	cfg *config.Config,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		listener: listener,
	}
}

// oapiErrorHandler gets no request, so the request id is read back from the
// response header set by middleware.RequestID.
func oapiErrorHandler(w http.ResponseWriter, message string, statusCode int) {
	body := api.Error{Message: fmt.Sprintf("API Error: %s", message)}
	if id := w.Header().Get(requestid.Header); id != "" {
		body.RequestId = &id
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// Handler builds the router with the whole middleware chain and every API route.
func (s *Server) Handler() (http.Handler, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load swagger spec: %w", err)
	}
	// Skip server name validation
	swagger.Servers = nil

	oapiOpts := oapimiddleware.Options{
		ErrorHandler: oapiErrorHandler,
	}

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegister(prometheus.DefaultRegisterer)

	origins := s.cfg.Service.CorsOrigins
	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id"},
			AllowCredentials: !funk.ContainsString(origins, "*"),
			MaxAge:           300,
		}),
		chiMiddleware.RequestID,
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
		render.SetContentType(render.ContentTypeJSON),
		oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapiOpts),
	)

	h := handlers.NewServiceHandler(
		service.NewCalculatorService(),
		service.NewChartService(s.cfg.Chart.MaxRows),
	)
	return handlers.HandlerFromMux(h, router), nil
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	handler, err := s.Handler()
	if err != nil {
		return err
	}
	srv := http.Server{Addr: s.cfg.Service.Address, Handler: handler}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
