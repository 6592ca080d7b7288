// Package config defines the run settings of metapop and provides helpers to
// load them from YAML, overlay METAPOP_* environment variables, validate
// and save them.
//
// Precedence, lowest first: Default, YAML file, environment, CLI flags.
package config
