package config

import (
	"sync"
	"time"

	"mountspa_server/structs"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "MountSPA_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8082"),
				ServerURL:      getEnvAsString("SERVER_URL", "http://localhost:8082"),
				FrontendURL:    getEnvAsString("FRONTEND_URL", "https://mountspa.pl"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:3000"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "Content-Disposition", "Authorization"}),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "mountspa_db"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Cache: &structs.CacheConfig{
				Address:      getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:     getEnvAsString("REDIS_USERNAME", ""),
				Password:     getEnvAsString("REDIS_PASSWORD", ""),
				DB:           getEnvAsInt("REDIS_DB", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				DialTimeout:  getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:  getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout: getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				CatalogTTL:   getEnvAsTimeDuration("REDIS_CATALOG_TTL", 30*time.Minute),
			},
			Auth: &structs.AuthConfig{
				AccessTokenSecret: getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
				AccessTokenExpiry: getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 15*time.Minute),
				BlacklistCacheTTL: getEnvAsTimeDuration("AUTH_BLACKLIST_CACHE_TTL", 15*time.Minute),
				CacheUserTTL:      getEnvAsTimeDuration("AUTH_CACHE_USER_TTL", 10*time.Minute),
				Argon: &structs.ArgonParams{
					Memory:  uint32(getEnvAsInt("AUTH_ARGON_MEMORY_KB", 64*1024)),
					Time:    uint32(getEnvAsInt("AUTH_ARGON_TIME", 1)),
					Threads: uint8(getEnvAsInt("AUTH_ARGON_THREADS", 4)),
					KeyLen:  uint32(getEnvAsInt("AUTH_ARGON_KEY_LEN", 32)),
					SaltLen: uint32(getEnvAsInt("AUTH_ARGON_SALT_LEN", 16)),
				},
			},
			Email: &structs.EmailConfig{
				ApiKey:    getEnvAsString("RESEND_API_KEY", ""),
				From:      getEnvAsString("EMAIL_FROM", "MountSPA <noreply@mountspa.pl>"),
				LeadInbox: getEnvAsString("EMAIL_LEAD_INBOX", "info@mountspa.pl"),
			},
			Catalog: &structs.CatalogConfig{
				BaseURL:        getEnvAsString("CATALOG_BASE_URL", "https://mountspa.pl/data"),
				DefaultLocale:  getEnvAsString("CATALOG_DEFAULT_LOCALE", "pl"),
				FallbackLocale: getEnvAsString("CATALOG_FALLBACK_LOCALE", "en"),
				FetchTimeout:   getEnvAsTimeDuration("CATALOG_FETCH_TIMEOUT", 10*time.Second),
			},
			Financing: &structs.FinancingConfig{
				MonthlyRate: getEnvAsFloat("FINANCING_MONTHLY_RATE", 0.005),
				TermMonths:  getEnvAsInt("FINANCING_TERM_MONTHS", 36),
				MaxLoan:     getEnvAsFloat("FINANCING_MAX_LOAN", 50000),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:         getEnvAsBool("RATE_LIMIT_ENABLED", true),
				AuthLimit:       getEnvAsInt("RATE_LIMIT_AUTH_LIMIT", 10),
				AuthWindow:      getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", 1*time.Minute),
				AdminLimit:      getEnvAsInt("RATE_LIMIT_ADMIN_LIMIT", 60),
				AdminWindow:     getEnvAsTimeDuration("RATE_LIMIT_ADMIN_WINDOW", 1*time.Minute),
				ExpensiveLimit:  getEnvAsInt("RATE_LIMIT_EXPENSIVE_LIMIT", 30),
				ExpensiveWindow: getEnvAsTimeDuration("RATE_LIMIT_EXPENSIVE_WINDOW", 1*time.Minute),
				GeneralLimit:    getEnvAsInt("RATE_LIMIT_GENERAL_LIMIT", 120),
				GeneralWindow:   getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", 1*time.Minute),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
