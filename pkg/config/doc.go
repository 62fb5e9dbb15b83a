// Package config loads typed configuration structs from environment
// variables, with optional .env file support for development.
//
// Each package in this module declares its own Config struct with `env` tags
// (see github.com/caarlos0/env); this package is the single place they get
// populated from the process environment:
//
//	var api apiclient.Config
//	config.MustLoad(&api)
//
// Load returns sentinel errors (ErrParsingConfig, ErrNilPointer) joined with
// the underlying parse failure so callers can use errors.Is.
package config
