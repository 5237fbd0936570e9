package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Submission SubmissionConfig `yaml:"submission"`
	Email      EmailConfig      `yaml:"email"`
	SMTP       SMTPConfig       `yaml:"smtp"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
	// PublicRateLimit is requests per minute per client IP on the public
	// write endpoints. 0 disables limiting.
	PublicRateLimit int `yaml:"public_rate_limit" env:"SERVER_PUBLIC_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SubmissionConfig holds intake workflow settings.
type SubmissionConfig struct {
	IDPrefix string `yaml:"id_prefix" env:"SUBMISSION_ID_PREFIX" env-default:"IST"`
}

// EmailConfig holds email pipeline settings.
type EmailConfig struct {
	SenderAddress string        `yaml:"sender_address" env:"EMAIL_SENDER_ADDRESS" env-default:"noreply@istpublications.com"`
	AdminAddress  string        `yaml:"admin_address"  env:"EMAIL_ADMIN_ADDRESS"  env-default:"admin@istpublications.com"`
	FrontendURL   string        `yaml:"frontend_url"   env:"EMAIL_FRONTEND_URL"   env-default:"http://localhost:3000"`
	BackendURL    string        `yaml:"backend_url"    env:"EMAIL_BACKEND_URL"    env-default:"http://localhost:8080"`
	MaxRetries    int           `yaml:"max_retries"    env:"EMAIL_MAX_RETRIES"    env-default:"5"`
	RetryInterval time.Duration `yaml:"retry_interval" env:"EMAIL_RETRY_INTERVAL" env-default:"30m"`
}

// SMTPConfig selects and configures the outbound mail transport.
// Transport "log" writes messages to the application log instead of sending.
type SMTPConfig struct {
	Transport     string `yaml:"transport"       env:"SMTP_TRANSPORT"       env-default:"smtp"`
	Host          string `yaml:"host"            env:"SMTP_HOST"`
	Port          int    `yaml:"port"            env:"SMTP_PORT"            env-default:"587"`
	Username      string `yaml:"username"        env:"SMTP_USER"`
	Password      string `yaml:"password"        env:"SMTP_PASS"`
	SkipTLSVerify bool   `yaml:"skip_tls_verify" env:"SMTP_SKIP_TLS_VERIFY" env-default:"false"`
}

// Transport names accepted by SMTPConfig.Transport.
const (
	TransportSMTP = "smtp"
	TransportLog  = "log"
)
