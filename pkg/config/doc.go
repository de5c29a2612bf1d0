// Package config loads environment variables into tagged structs.
//
// Load reads an optional .env file once per process (via godotenv), then
// parses the environment into the struct through caarlos0/env tags:
//
//	type Config struct {
//	    CookieName string `env:"SATPAM_COOKIE_NAME" envDefault:"satpam"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
//
// MustLoad panics on failure and suits configuration the application cannot
// start without.
package config
