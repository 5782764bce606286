// Package config loads and validates service configuration.
//
// Load reads a YAML config file, layers a .env file on top, and lets process
// environment variables override both:
//
//	var cfg config.Config
//	if err := config.Load("my-service", &cfg); err != nil {
//		log.Fatal(err)
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
// Config is the ready-made root for services embedding bearer-token
// authentication: service identity, logging, the ordered credential list, and
// telemetry. Services with extra sections define their own struct and pass it
// to Load the same way.
//
// Validation is fail-fast: missing credential fields, duplicate scheme names,
// and bad log levels all abort before a server starts serving.
package config
