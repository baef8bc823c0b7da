package rest

import (
	"net/http"

	"mentcare/application/commands/bus"
	querybus "mentcare/application/queries/bus"
	"mentcare/application/services"
	"mentcare/infrastructure/config"
	"mentcare/interfaces/http/rest/handlers"
	"mentcare/interfaces/http/rest/middleware"
	"mentcare/pkg/auth"
	pkgerrors "mentcare/pkg/errors"
	"mentcare/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg           *config.Config
	commandBus    *bus.CommandBus
	queryBus      *querybus.QueryBus
	reportService *services.ReportService
	jwtValidator  *auth.JWTValidator
	rateLimiter   *auth.DistributedRateLimiter
	tracer        *observability.Tracer
	metrics       *observability.Metrics
	logger        *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	reportService *services.ReportService,
	jwtValidator *auth.JWTValidator,
	rateLimiter *auth.DistributedRateLimiter,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:           cfg,
		commandBus:    commandBus,
		queryBus:      queryBus,
		reportService: reportService,
		jwtValidator:  jwtValidator,
		rateLimiter:   rateLimiter,
		tracer:        tracer,
		metrics:       metrics,
		logger:        logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.tracer.Middleware)
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	errorHandler := pkgerrors.NewErrorHandler(rt.logger, rt.cfg.IsDevelopment())
	devMode := rt.cfg.JWTSecret == ""

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.jwtValidator, rt.rateLimiter, devMode, rt.logger))

		// Patient endpoints
		r.Route("/patients", func(r chi.Router) {
			patientHandler := handlers.NewPatientHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)
			r.Post("/", patientHandler.RegisterPatient)
			r.Get("/", patientHandler.ListPatients)
			r.Get("/{patientID}", patientHandler.GetPatient)
			r.Put("/{patientID}/risk", patientHandler.ChangeRisk)

			appointmentHandler := handlers.NewAppointmentHandler(rt.commandBus, errorHandler, rt.logger)
			r.Post("/{patientID}/appointments", appointmentHandler.ScheduleAppointment)
		})

		// Reminder endpoint
		r.Post("/reminders/run", handlers.NewAppointmentHandler(rt.commandBus, errorHandler, rt.logger).SendReminders)

		// Report endpoints
		r.Route("/reports", func(r chi.Router) {
			reportHandler := handlers.NewReportHandler(rt.queryBus, rt.reportService, errorHandler, rt.logger)
			r.Get("/risk", reportHandler.GetRiskReport)
			r.Post("/risk", reportHandler.ProduceRiskReport)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
