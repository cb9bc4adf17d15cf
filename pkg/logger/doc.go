// Package logger builds *slog.Logger values with functional options.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a LogHandlerDecorator that pulls request scoped values (request
// id, visitor id, environment) out of the context on every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			visitor.LoggerExtractor(),
//		),
//	)
//
// The attribute helpers in attr.go keep key names consistent across the
// HTTP module, the terminal UI and the CLI.
package logger
