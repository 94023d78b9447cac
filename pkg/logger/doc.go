// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package standardises structured logging across the SDK by exposing a
// single factory – New – that creates a *slog.Logger configured by a set of
// Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from
//     a context value every time Handle is invoked
//
// # Architecture
//
// New picks a concrete slog.Handler implementation – slog.NewTextHandler or
// slog.NewJSONHandler – based on the configured Format, then wraps it with
// LogHandlerDecorator which runs any registered ContextExtractor callbacks
// before delegating to the underlying handler.
//
// Helper constructors such as Error, VisitorID, SessionID, Classification
// live in attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Environment, "webapp"),
//	)
//
//	log.Info("event delivered",
//	    logger.EventType("pageview"),
//	    logger.VisitorID(visitorID),
//	)
//
// Discard returns a logger that drops everything; it is the default for SDK
// components so tracking stays silent unless the host wires a logger in.
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, allowing calls like
//
//	log.Info("send finished", logger.Error(err))
//
// without an additional nil check.
package logger
