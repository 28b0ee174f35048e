package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "jobboard"
	DefaultVersion           = "dev"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "jobly"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultShutdownTimeout   = 10 * time.Second
)
