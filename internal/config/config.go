package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Worker      WorkerConfig
	Logging     LoggingConfig
	EventBus    EventBusConfig
	Import      ImportConfig
	Database    DatabaseConfig
	Archive     ArchiveConfig
	Advisor     AdvisorConfig
	Suggestions SuggestionsConfig
	Budget      BudgetConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
	CORSAllowOrigin string
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

type ImportConfig struct {
	SessionTTL       time.Duration
	MaxUploadBytes   int64
	SampleRows       int
	MaxRows          int
	DefaultAccountID string
	DefaultCurrency  string
}

// DatabaseConfig selects the PostgreSQL store when URL is set.
type DatabaseConfig struct {
	URL            string
	MaxConns       int
	ConnectRetries int
}

type ArchiveConfig struct {
	Bucket string
}

type AdvisorConfig struct {
	APIKey              string
	Model               string
	MaxRetries          int
	RetryDelay          time.Duration
	ContextTransactions int
}

type SuggestionsConfig struct {
	RulesFile string
}

// BudgetConfig.WarningThreshold is the spent/limit ratio at which a budget
// turns to the warning state.
type BudgetConfig struct {
	WarningThreshold float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
			CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 4),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Import: ImportConfig{
			SessionTTL:       getDurationEnv("IMPORT_SESSION_TTL", 10*time.Minute),
			MaxUploadBytes:   getInt64Env("IMPORT_MAX_UPLOAD_BYTES", 10<<20),
			SampleRows:       getIntEnv("IMPORT_SAMPLE_ROWS", 20),
			MaxRows:          getIntEnv("IMPORT_MAX_ROWS", 50000),
			DefaultAccountID: getEnv("IMPORT_DEFAULT_ACCOUNT_ID", "acc_cash"),
			DefaultCurrency:  getEnv("IMPORT_DEFAULT_CURRENCY", "USD"),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MaxConns:       getIntEnv("DATABASE_MAX_CONNS", 10),
			ConnectRetries: getIntEnv("DATABASE_CONNECT_RETRIES", 5),
		},
		Archive: ArchiveConfig{
			Bucket: getEnv("IMPORT_ARCHIVE_BUCKET", ""),
		},
		Advisor: AdvisorConfig{
			APIKey:              getEnv("GEMINI_API_KEY", ""),
			Model:               getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			MaxRetries:          getIntEnv("ADVISOR_MAX_RETRIES", 3),
			RetryDelay:          getDurationEnv("ADVISOR_RETRY_DELAY", time.Second),
			ContextTransactions: getIntEnv("ADVISOR_CONTEXT_TRANSACTIONS", 50),
		},
		Suggestions: SuggestionsConfig{
			RulesFile: getEnv("SUGGESTION_RULES_FILE", ""),
		},
		Budget: BudgetConfig{
			WarningThreshold: getRatioEnv("BUDGET_WARNING_THRESHOLD", 0.8),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getInt64Env(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getRatioEnv accepts values strictly between 0 and 1.
func getRatioEnv(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || value <= 0 || value >= 1 {
		log.Printf("Invalid ratio for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
