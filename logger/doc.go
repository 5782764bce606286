// Package logger provides structured logging for bearerkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The registry and the
// authentication middleware accept a *Logger so that host applications
// can route bearerkit's diagnostics through their own sink.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("my-service").WithComponent("auth")
//	log.Info("registry ready", logger.Fields("schemes", 3))
package logger
