// Package logger builds *slog.Logger instances for safetext binaries.
//
// New assembles a text or JSON handler from functional options and wraps it
// in ContextHandler, which adds attributes pulled from context.Context on
// every record. Attribute helpers (Error, Component, Operation, Bytes, …) keep
// key names consistent.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "safetext"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Info("sanitized input", logger.Operation("escape"), logger.Bytes(n))
//
// WithFormat panics on an unknown format so misconfiguration fails at
// startup.
package logger
