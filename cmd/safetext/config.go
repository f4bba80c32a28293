package main

// Config holds the command's environment configuration.
type Config struct {
	Env       string `env:"SAFETEXT_ENV" envDefault:"development"`
	LogLevel  string `env:"SAFETEXT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SAFETEXT_LOG_FORMAT"`
	Op        string `env:"SAFETEXT_OP" envDefault:"input"`
	MaxInput  int    `env:"SAFETEXT_MAX_INPUT" envDefault:"1048576"`
}
