// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// environment, and github.com/caarlos0/env/v11, which parses the environment
// into a struct annotated with `env` tags:
//
//	type Config struct {
//	    Op       string `env:"SAFETEXT_OP" envDefault:"input"`
//	    MaxInput int    `env:"SAFETEXT_MAX_INPUT" envDefault:"1048576"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, ".env"); err != nil {
//	    log.Fatal(err)
//	}
//
// Variables already present in the environment win over values from files.
// Missing files are skipped; malformed files are reported.
//
// Errors wrap the sentinels ErrLoadingEnvFile, ErrParsingConfig and
// ErrNilPointer and can be matched with errors.Is.
package config
