package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultAuthRateLimit  = 20
	defaultTokenDuration  = 24 * time.Hour
	defaultBcryptCost     = 10
	defaultVersion        = "dev"
	defaultLogLevel       = "debug"
	defaultTimeZone       = "UTC"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
			Version:       defaultVersion,
			LogLevel:      defaultLogLevel,
			TimeZone:      defaultTimeZone,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AuthRateLimit:  defaultAuthRateLimit,
		},
	}
}
