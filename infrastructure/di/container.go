package di

import (
	"mentcare/application/commands/bus"
	"mentcare/application/ports"
	querybus "mentcare/application/queries/bus"
	"mentcare/application/services"
	"mentcare/infrastructure/config"
	"mentcare/pkg/auth"
	"mentcare/pkg/observability"
	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *zap.Logger
	PatientRepo       ports.PatientRepository
	AppointmentRepo   ports.AppointmentRepository
	AlertSink         ports.AlertSink
	ReportWriter      ports.ReportWriter
	Clock             ports.Clock
	EventPublisher    ports.EventPublisher
	Cache             ports.Cache
	CommandBus        *bus.CommandBus
	QueryBus          *querybus.QueryBus
	ReportService     *services.ReportService
	ReminderScheduler *services.ReminderScheduler
	Metrics           *observability.Metrics
	Tracer            *observability.Tracer
	JWTValidator      *auth.JWTValidator
	RateLimiter       *auth.DistributedRateLimiter
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvidePatientValidator,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvidePatientRepository,
	ProvideAppointmentRepository,
	ProvideClock,
	ProvideAlertSink,
	ProvideReportWriter,
	ProvideEventPublisher,
	ProvideCache,
	ProvideMetrics,
	ProvideTracer,
	ProvideJWTValidator,
	ProvideDistributedRateLimiter,
	ProvideRegisterPatientHandler,
	ProvideChangeRiskHandler,
	ProvideScheduleAppointmentHandler,
	ProvideSendRemindersHandler,
	ProvidePatientQueryHandler,
	ProvideRiskReportHandler,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideReportService,
	ProvideReminderScheduler,
	wire.Struct(new(Container), "*"),
)
