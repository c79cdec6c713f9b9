package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Catalog   *CatalogConfig
	Financing *FinancingConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // MountSPA
	Environment    string        // development, production
	Port           string        // :8082
	ServerURL      string        // public base URL of this API
	FrontendURL    string        // configurator frontend, used for share links
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int // in seconds
}

type RateLimitConfig struct {
	Enabled bool

	// Per-class limits over their window
	AuthLimit       int
	AuthWindow      time.Duration
	AdminLimit      int
	AdminWindow     time.Duration
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
	GeneralLimit    int
	GeneralWindow   time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CatalogTTL   time.Duration // how long a locale catalog stays in Redis
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	BlacklistCacheTTL time.Duration // fallback TTL for revoked token ids
	CacheUserTTL      time.Duration
	Argon             *ArgonParams // password hashing cost parameters
}

type EmailConfig struct {
	ApiKey    string
	From      string
	LeadInbox string // where lead notifications are delivered
}

type CatalogConfig struct {
	BaseURL        string // static resource root, e.g. https://cdn.mountspa.pl/data
	DefaultLocale  string // locale assumed when the client sends none
	FallbackLocale string // tried when the requested locale is unavailable
	FetchTimeout   time.Duration
}

// FinancingConfig carries the installment-estimate defaults shown in the
// configurator; they mirror the dealer's standing financing offer.
type FinancingConfig struct {
	MonthlyRate float64 // e.g. 0.005 = 0.5% per month
	TermMonths  int
	MaxLoan     float64
}
