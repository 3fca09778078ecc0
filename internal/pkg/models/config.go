package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Services ServicesConfig
	Trips    TripsConfig
	Bookings BookingsConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress      string
	LookupdAddresses []string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// ServicesConfig contains URLs for external collaborator services
type ServicesConfig struct {
	PaymentServiceURL string
}

// TripsConfig contains trip lifecycle configuration
type TripsConfig struct {
	MinLeadMinutes    int     // minimum minutes between now and departure at creation/booking
	UpdateLockMinutes int     // no edits inside this window before departure
	AvgSpeedKmh       float64 // assumed average speed for arrival estimation
	DefaultDuration   int     // fallback trip duration in hours
}

// BookingsConfig contains booking lifecycle configuration
type BookingsConfig struct {
	PendingTimeoutMinutes int // PENDING bookings older than this are auto-cancelled
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
