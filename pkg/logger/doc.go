// Package logger creates configured slog.Logger instances.
//
// New applies functional options over production-safe defaults (JSON output
// at INFO level):
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(slog.String("service", "satpam")),
//	)
package logger
