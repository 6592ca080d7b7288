// SPDX-License-Identifier: MIT

// Package markov: functional configuration for Chain.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Options only record values; NewChain validates them and returns
//     ErrInvalidParameter instead of panicking, since they usually come from
//     user configuration.
package markov

import (
	"fmt"
	"strings"
)

// Method selects how a Chain evolves its distribution.
type Method string

const (
	// MethodIterate applies P once per year (O(T)).
	MethodIterate Method = "iterate"
	// MethodSquaring multiplies by P^T computed with repeated squaring (O(log T)).
	MethodSquaring Method = "squaring"
)

// DefaultMethod is the propagation method of a Chain built without WithMethod.
const DefaultMethod = MethodIterate

// ParseMethod converts a case-insensitive name into a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodIterate, MethodSquaring:
		return m, nil
	default:
		return "", fmt.Errorf("method %q (want %q or %q): %w", s, MethodIterate, MethodSquaring, ErrInvalidParameter)
	}
}

// Option configures a Chain.
type Option func(*Options)

// Options holds the effective Chain configuration. Fields are unexported;
// use the With* setters.
type Options struct {
	tolerance float64
	method    Method
}

// WithTolerance sets the absolute row-sum tolerance of the stochasticity check.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMethod selects the propagation method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// gatherOptions applies setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance: DefaultTolerance,
		method:    DefaultMethod,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate checks the resolved options.
func (o Options) validate() error {
	if err := ValidateTolerance(o.tolerance); err != nil {
		return err
	}
	if _, err := ParseMethod(string(o.method)); err != nil {
		return err
	}

	return nil
}
