// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each configuration type is parsed once per process and cached; concurrent
// loads of the same type observe the same value. Fields are declared with
// `env` tags:
//
//	type WorkflowConfig struct {
//		CancelTimersOnReset bool `env:"CANCEL_TIMERS_ON_RESET" envDefault:"false"`
//	}
package config
