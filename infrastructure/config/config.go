package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend names accepted by STORE_BACKEND
const (
	StoreMemory   = "memory"
	StoreCSV      = "csv"
	StoreDynamoDB = "dynamodb"
	StoreMySQL    = "mysql"
)

// Report formats accepted by REPORT_FORMAT
const (
	ReportConsole = "console"
	ReportCSV     = "csv"
	ReportJSON    = "json"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Storage
	StoreBackend string
	CSVPath      string
	MySQLDSN     string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	EventBusName  string

	// Lambda configuration
	IsLambda bool

	// Redis
	RedisAddr     string
	RedisPassword string

	// Notifications
	AlertRecipient string

	// Reminders
	ReminderWindow   time.Duration
	ReminderSchedule string

	// Reports
	ReportFormat string

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from the environment. A .env file in the
// working directory is read first when present; real environment variables
// win over it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		StoreBackend: getEnv("STORE_BACKEND", StoreMemory),
		CSVPath:      getEnv("CSV_PATH", "patients.csv"),
		MySQLDSN:     getEnv("MYSQL_DSN", ""),

		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", "mentcare"),
		EventBusName:  getEnv("EVENT_BUS_NAME", ""),

		IsLambda: getEnvBool("IS_LAMBDA", false),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AlertRecipient: getEnv("ALERT_RECIPIENT", "care-team@clinic.example"),

		ReminderWindow:   getEnvDuration("REMINDER_WINDOW", 24*time.Hour),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "@hourly"),

		ReportFormat: getEnv("REPORT_FORMAT", ReportConsole),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "mentcare"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory, StoreCSV, StoreDynamoDB, StoreMySQL:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.StoreBackend == StoreMySQL && c.MySQLDSN == "" {
		return fmt.Errorf("MYSQL_DSN is required with the mysql backend")
	}

	switch c.ReportFormat {
	case ReportConsole, ReportCSV, ReportJSON:
	default:
		return fmt.Errorf("unknown REPORT_FORMAT %q", c.ReportFormat)
	}

	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.StoreBackend == StoreDynamoDB && c.DynamoDBTable == "" {
			return fmt.Errorf("TABLE_NAME is required with the dynamodb backend")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
