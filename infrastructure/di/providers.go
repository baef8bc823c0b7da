package di

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"mentcare/application/commands"
	"mentcare/application/commands/bus"
	commands_handlers "mentcare/application/commands/handlers"
	"mentcare/application/ports"
	"mentcare/application/queries"
	querybus "mentcare/application/queries/bus"
	queries_handlers "mentcare/application/queries/handlers"
	"mentcare/application/services"
	domainconfig "mentcare/domain/config"
	"mentcare/domain/core/validators"
	rediscache "mentcare/infrastructure/cache"
	"mentcare/infrastructure/clock"
	"mentcare/infrastructure/config"
	"mentcare/infrastructure/messaging/eventbridge"
	"mentcare/infrastructure/notify"
	"mentcare/infrastructure/persistence/csvfile"
	dynamostore "mentcare/infrastructure/persistence/dynamodb"
	"mentcare/infrastructure/persistence/memory"
	mysqlstore "mentcare/infrastructure/persistence/mysql"
	"mentcare/infrastructure/report"
	"mentcare/pkg/auth"
	"mentcare/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig creates the domain rule configuration
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	dc := domainconfig.DefaultDomainConfig()
	dc.ReminderWindow = cfg.ReminderWindow
	return dc
}

// ProvidePatientValidator creates the patient input validator
func ProvidePatientValidator(dc *domainconfig.DomainConfig) *validators.PatientValidator {
	return validators.NewPatientValidator(dc)
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvidePatientRepository selects the patient store named by STORE_BACKEND
func ProvidePatientRepository(cfg *config.Config, dynamoClient *awsdynamodb.Client) (ports.PatientRepository, error) {
	switch cfg.StoreBackend {
	case config.StoreCSV:
		return csvfile.NewPatientRepository(cfg.CSVPath), nil
	case config.StoreDynamoDB:
		return dynamostore.NewPatientRepository(dynamoClient, cfg.DynamoDBTable), nil
	case config.StoreMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql: %w", err)
		}
		return mysqlstore.NewPatientRepository(db), nil
	default:
		return memory.NewPatientRepository(), nil
	}
}

// ProvideAppointmentRepository selects the appointment store. The CSV and
// MySQL backends keep appointments in memory; only patients have a file or
// relational shape today.
func ProvideAppointmentRepository(cfg *config.Config, dynamoClient *awsdynamodb.Client) ports.AppointmentRepository {
	if cfg.StoreBackend == config.StoreDynamoDB {
		return dynamostore.NewAppointmentRepository(dynamoClient, cfg.DynamoDBTable)
	}
	return memory.NewAppointmentRepository()
}

// ProvideClock creates the system clock
func ProvideClock() ports.Clock {
	return clock.NewSystemClock()
}

// ProvideAlertSink creates the care-team alert sink
func ProvideAlertSink(cfg *config.Config, logger *zap.Logger) ports.AlertSink {
	if cfg.AlertRecipient == "" {
		return notify.NewConsoleAlertSink(logger)
	}
	return notify.NewEmailAlertSink(os.Stdout, cfg.AlertRecipient)
}

// ProvideReportWriter selects the report writer named by REPORT_FORMAT
func ProvideReportWriter(cfg *config.Config, logger *zap.Logger) ports.ReportWriter {
	switch cfg.ReportFormat {
	case config.ReportCSV:
		return report.NewCSVWriter(os.Stdout)
	case config.ReportJSON:
		return report.NewJSONWriter(os.Stdout)
	default:
		return report.NewConsoleWriter(logger)
	}
}

// ProvideEventPublisher creates the domain event publisher. Without a
// configured bus name events are dropped.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NewNoopPublisher()
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideCache selects Redis when configured, in-process memory otherwise
func ProvideCache(cfg *config.Config, logger *zap.Logger) ports.Cache {
	if cfg.RedisAddr == "" {
		return NewInMemoryCache()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return rediscache.NewRedisCache(client, logger)
}

// ProvideMetrics creates metrics instance
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	namespace := fmt.Sprintf("Mentcare/%s", cfg.Environment)
	return observability.NewMetrics(namespace, client)
}

// ProvideTracer creates the request tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer("mentcare", cfg.EnableTracing)
}

// ProvideDistributedRateLimiter creates a DynamoDB-backed rate limiter when
// the DynamoDB backend is in play; other deployments use in-process limits
func ProvideDistributedRateLimiter(client *awsdynamodb.Client, cfg *config.Config) *auth.DistributedRateLimiter {
	if cfg.StoreBackend != config.StoreDynamoDB {
		return nil
	}
	return auth.NewDistributedRateLimiter(client, cfg.DynamoDBTable, 200, time.Minute, "API")
}

// ProvideJWTValidator creates the token validator
func ProvideJWTValidator(cfg *config.Config) *auth.JWTValidator {
	return auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)
}

// ProvideRegisterPatientHandler creates the registration handler
func ProvideRegisterPatientHandler(
	patientRepo ports.PatientRepository,
	alertSink ports.AlertSink,
	publisher ports.EventPublisher,
	clk ports.Clock,
	validator *validators.PatientValidator,
	logger *zap.Logger,
) *commands_handlers.RegisterPatientHandler {
	return commands_handlers.NewRegisterPatientHandler(patientRepo, alertSink, publisher, clk, validator, logger)
}

// ProvideChangeRiskHandler creates the risk reclassification handler
func ProvideChangeRiskHandler(
	patientRepo ports.PatientRepository,
	alertSink ports.AlertSink,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *commands_handlers.ChangeRiskHandler {
	return commands_handlers.NewChangeRiskHandler(patientRepo, alertSink, publisher, logger)
}

// ProvideScheduleAppointmentHandler creates the scheduling handler
func ProvideScheduleAppointmentHandler(
	patientRepo ports.PatientRepository,
	appointmentRepo ports.AppointmentRepository,
	publisher ports.EventPublisher,
	validator *validators.PatientValidator,
	logger *zap.Logger,
) *commands_handlers.ScheduleAppointmentHandler {
	return commands_handlers.NewScheduleAppointmentHandler(patientRepo, appointmentRepo, publisher, validator, logger)
}

// ProvideSendRemindersHandler creates the reminder handler
func ProvideSendRemindersHandler(
	appointmentRepo ports.AppointmentRepository,
	patientRepo ports.PatientRepository,
	alertSink ports.AlertSink,
	publisher ports.EventPublisher,
	clk ports.Clock,
	dc *domainconfig.DomainConfig,
	logger *zap.Logger,
) *commands_handlers.SendRemindersHandler {
	return commands_handlers.NewSendRemindersHandler(appointmentRepo, patientRepo, alertSink, publisher, clk, dc.ReminderWindow, logger)
}

// ProvidePatientQueryHandler creates the patient read-model handler
func ProvidePatientQueryHandler(patientRepo ports.PatientRepository, logger *zap.Logger) *queries_handlers.PatientQueryHandler {
	return queries_handlers.NewPatientQueryHandler(patientRepo, logger)
}

// ProvideRiskReportHandler creates the census handler
func ProvideRiskReportHandler(patientRepo ports.PatientRepository, cache ports.Cache, logger *zap.Logger) *queries_handlers.RiskReportHandler {
	return queries_handlers.NewRiskReportHandler(patientRepo, cache, logger)
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	registerHandler *commands_handlers.RegisterPatientHandler,
	changeRiskHandler *commands_handlers.ChangeRiskHandler,
	scheduleHandler *commands_handlers.ScheduleAppointmentHandler,
	remindersHandler *commands_handlers.SendRemindersHandler,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()
	pipeline := bus.NewPipeline(bus.LoggingMiddleware(&zapLoggerAdapter{logger}))

	commandBus.Register(commands.RegisterPatientCommand{}, pipeline.Execute(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			registerCmd, ok := cmd.(commands.RegisterPatientCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := registerHandler.Handle(ctx, registerCmd)
			return err
		},
	}))

	commandBus.Register(commands.ChangeRiskCommand{}, pipeline.Execute(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			changeCmd, ok := cmd.(commands.ChangeRiskCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return changeRiskHandler.Handle(ctx, changeCmd)
		},
	}))

	commandBus.Register(commands.ScheduleAppointmentCommand{}, pipeline.Execute(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			scheduleCmd, ok := cmd.(commands.ScheduleAppointmentCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := scheduleHandler.Handle(ctx, scheduleCmd)
			return err
		},
	}))

	commandBus.Register(commands.SendRemindersCommand{}, pipeline.Execute(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			remindCmd, ok := cmd.(commands.SendRemindersCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return remindersHandler.Handle(ctx, remindCmd)
		},
	}))

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	patientHandler *queries_handlers.PatientQueryHandler,
	reportHandler *queries_handlers.RiskReportHandler,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	queryBus.Register(queries.GetPatientQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetPatientQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return patientHandler.HandleGetPatient(ctx, getQuery)
		},
	})

	queryBus.Register(queries.ListPatientsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListPatientsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return patientHandler.HandleListPatients(ctx, listQuery)
		},
	})

	queryBus.Register(queries.RiskReportQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			reportQuery, ok := query.(queries.RiskReportQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return reportHandler.Handle(ctx, reportQuery)
		},
	})

	return queryBus
}

// ProvideReportService creates the report production service
func ProvideReportService(
	reportHandler *queries_handlers.RiskReportHandler,
	writer ports.ReportWriter,
	logger *zap.Logger,
) *services.ReportService {
	return services.NewReportService(reportHandler, writer, logger)
}

// ProvideReminderScheduler creates the cron-driven reminder scheduler
func ProvideReminderScheduler(
	remindersHandler *commands_handlers.SendRemindersHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *services.ReminderScheduler {
	return services.NewReminderScheduler(remindersHandler, cfg.ReminderSchedule, logger)
}

// zapLoggerAdapter adapts zap.Logger to the bus.Logger interface
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, fields ...interface{}) {
	a.logger.Info(msg, a.fieldsToZap(fields...)...)
}

func (a *zapLoggerAdapter) Error(msg string, fields ...interface{}) {
	a.logger.Error(msg, a.fieldsToZap(fields...)...)
}

func (a *zapLoggerAdapter) fieldsToZap(fields ...interface{}) []zap.Field {
	var zapFields []zap.Field
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			key, _ := fields[i].(string)
			zapFields = append(zapFields, zap.Any(key, fields[i+1]))
		}
	}
	return zapFields
}
