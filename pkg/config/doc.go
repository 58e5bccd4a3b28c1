// Package config loads component configuration structs from environment
// variables, with an optional .env file for local development.
//
// Config structs live next to the component they configure (for example
// billing.LarkConfig) and declare their variables with `env:` tags:
//
//	var cfg billing.LarkConfig
//	config.MustLoad(&cfg)
//
// The .env file is read at most once per process and its absence is not an
// error.
package config
