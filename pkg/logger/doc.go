// Package logger builds configured slog.Logger instances for the SDK's
// best-effort failure reporting (verification, renewal and server-side logout
// problems are logged, not surfaced).
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("component", "wemolkit")),
//	)
//	client := authsession.New(api, cookies, authsession.WithLogger(log))
package logger
