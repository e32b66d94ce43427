package config

import "time"

// Config holds application configuration.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	DataPath        string        `env:"DATA_PATH" envDefault:"storefront.db"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
