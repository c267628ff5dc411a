package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Tables    TablesConfig    `yaml:"tables"`
	Retry     RetryConfig     `yaml:"retry"`
	Upload    UploadConfig    `yaml:"upload"`
	Links     LinksConfig     `yaml:"links"`
	Booking   BookingConfig   `yaml:"booking"`
	Security  SecurityConfig  `yaml:"security"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StoreConfig holds the external record store credentials and endpoints.
type StoreConfig struct {
	Token          string        `yaml:"token"           env:"STORE_TOKEN"           env-required:"true"`
	BaseID         string        `yaml:"base_id"         env:"STORE_BASE_ID"         env-required:"true"`
	APIURL         string        `yaml:"api_url"         env:"STORE_API_URL"         env-default:"https://api.airtable.com/v0"`
	ContentURL     string        `yaml:"content_url"     env:"STORE_CONTENT_URL"     env-default:"https://content.airtable.com/v0"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"STORE_REQUEST_TIMEOUT" env-default:"30s"`
}

// TablesConfig maps each form to the store table that holds its records.
type TablesConfig struct {
	Clients  string `yaml:"clients"  env:"STORE_TABLE_CLIENTES"     env-default:"Clientes"`
	Repairs  string `yaml:"repairs"  env:"STORE_TABLE_REPARACIONES" env-default:"Reparaciones"`
	Support  string `yaml:"support"  env:"STORE_TABLE_FORMULARIO"   env-default:"Formulario"`
	Bookings string `yaml:"bookings" env:"STORE_TABLE_RESERVAS"     env-default:"Reservas"`

	// RepairsCreatedField is the created-time column recent repairs are
	// sorted by. Empty orders the returned page by record creation time only.
	RepairsCreatedField string `yaml:"repairs_created_field" env:"STORE_REPAIRS_CREATED_FIELD" env-default:"Creado"`
}

// RetryConfig holds the outbound retry policy.
type RetryConfig struct {
	MaxAttempts      int           `yaml:"max_attempts"      env:"RETRY_MAX_ATTEMPTS"      env-default:"3"`
	RateLimitBackoff time.Duration `yaml:"rate_limit_backoff" env:"RETRY_RATE_LIMIT_BACKOFF" env-default:"1s"`
	TransientBackoff time.Duration `yaml:"transient_backoff" env:"RETRY_TRANSIENT_BACKOFF" env-default:"500ms"`
	// RetryCreate enables the transient (network/5xx) retry for create calls.
	// Creates carry no idempotency key, so a retried create may double-insert.
	RetryCreate bool `yaml:"retry_create" env:"RETRY_CREATE" env-default:"false"`
}

// UploadConfig holds attachment encoding limits per device class.
type UploadConfig struct {
	EncodeTimeout   time.Duration `yaml:"encode_timeout"    env:"UPLOAD_ENCODE_TIMEOUT"    env-default:"30s"`
	DesktopMaxBytes int64         `yaml:"desktop_max_bytes" env:"UPLOAD_DESKTOP_MAX_BYTES" env-default:"10485760"`
	MobileMaxBytes  int64         `yaml:"mobile_max_bytes"  env:"UPLOAD_MOBILE_MAX_BYTES"  env-default:"5242880"`
	DesktopMaxEdge  int           `yaml:"desktop_max_edge"  env:"UPLOAD_DESKTOP_MAX_EDGE"  env-default:"800"`
	MobileMaxEdge   int           `yaml:"mobile_max_edge"   env:"UPLOAD_MOBILE_MAX_EDGE"   env-default:"600"`
	DesktopQuality  int           `yaml:"desktop_quality"   env:"UPLOAD_DESKTOP_QUALITY"   env-default:"70"`
	MobileQuality   int           `yaml:"mobile_quality"    env:"UPLOAD_MOBILE_QUALITY"    env-default:"60"`
	// MaxParallel caps concurrent uploads for desktop clients; 0 means unbounded.
	// Mobile clients always upload one file at a time.
	MaxParallel     int   `yaml:"max_parallel"      env:"UPLOAD_MAX_PARALLEL"      env-default:"0"`
	MaxRequestBytes int64 `yaml:"max_request_bytes" env:"UPLOAD_MAX_REQUEST_BYTES" env-default:"67108864"`
	// MaxPixels caps width*height read from an image header before decoding.
	MaxPixels int64 `yaml:"max_pixels" env:"UPLOAD_MAX_PIXELS" env-default:"40000000"`
}

// LinksConfig holds the public URLs used when generating shareable links.
type LinksConfig struct {
	PublicBaseURL  string `yaml:"public_base_url"  env:"LINKS_PUBLIC_BASE_URL"  env-default:"http://localhost:3000"`
	BookingBaseURL string `yaml:"booking_base_url" env:"LINKS_BOOKING_BASE_URL" env-default:"https://formulario.ritest.es"`
}

// BookingConfig holds appointment slot generation settings.
type BookingConfig struct {
	Timezone    string `yaml:"timezone"     env:"BOOKING_TIMEZONE"     env-default:"Europe/Madrid"`
	SlotMinutes int    `yaml:"slot_minutes" env:"BOOKING_SLOT_MINUTES" env-default:"15"`
	WindowsRaw  string `yaml:"windows"      env:"BOOKING_WINDOWS"      env-default:"08:00-10:00,12:00-14:00,16:00-18:00"`

	// Windows is parsed from WindowsRaw during validation.
	Windows []Window `yaml:"-" env:"-"`
}

// Window is a daily availability range expressed in minutes since midnight.
type Window struct {
	Start int
	End   int
}

// SecurityConfig holds settings for sensitive form fields.
type SecurityConfig struct {
	HashPasswords bool `yaml:"hash_passwords" env:"SECURITY_HASH_PASSWORDS" env-default:"true"`
	BcryptCost    int  `yaml:"bcrypt_cost"    env:"SECURITY_BCRYPT_COST"    env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	// File enables an additional rotated log file when non-empty.
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"10"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"30"`
}

// RateLimitConfig holds the inbound per-IP limit.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// TracingConfig holds OpenTelemetry exporter settings.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"      env:"OTEL_ENABLED"                env-default:"false"`
	Endpoint    string `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
	Insecure    bool   `yaml:"insecure"     env:"OTEL_EXPORTER_INSECURE"      env-default:"true"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME"           env-default:"fieldforms-backend"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
