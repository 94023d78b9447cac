// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each struct type is parsed once per process and cached, so independent
// components can call Load for the same type without re-reading the
// environment or diverging on values.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/config"
//
//	type Config struct {
//		SiteID   string `env:"TRACK_SITE_ID,required"`
//		Endpoint string `env:"TRACK_ENDPOINT,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Field tags follow github.com/caarlos0/env conventions: `env` names the
// variable, `envDefault` supplies a fallback, and the `required` option
// makes parsing fail when the variable is unset.
package config
