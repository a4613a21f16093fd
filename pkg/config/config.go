// Copyright (C) 2025 SAGE-X Project
//
// This file is part of sage-did-go.
//
// sage-did-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sage-did-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sage-did-go.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads resolver inputs through viper, so credentials can
// come from the environment or from an optional local config file using
// the same keys (AGENT_DID, AGENT_SOLANA_PRIVATE_KEY, ...). The snapshot
// is plain read-only state constructed once at startup; there is no
// process-wide singleton.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sage-x-project/sage-did-go/pkg/resolver"
)

// Keys lists every variable the resolver understands.
var Keys = []string{
	resolver.EnvDID,
	resolver.EnvPrivateKey,
	resolver.EnvSolanaDID,
	resolver.EnvSolanaPrivateKey,
	resolver.EnvEVMDID,
	resolver.EnvEVMPrivateKey,
}

// Config is an immutable snapshot of resolver inputs.
type Config struct {
	values map[string]string
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	file string
}

// WithFile merges a config file (any format viper understands) underneath
// the environment. Environment variables always win.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// Load reads the known keys from the environment (and the optional file)
// into a snapshot.
func Load(opts ...Option) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	for _, key := range Keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if o.file != "" {
		v.SetConfigFile(o.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	values := make(map[string]string, len(Keys))
	for _, key := range Keys {
		values[key] = v.GetString(key)
	}
	return &Config{values: values}, nil
}

// Lookup adapts the snapshot to the resolver's Lookup shape.
func (c *Config) Lookup() resolver.Lookup {
	return func(key string) (string, bool) {
		v, ok := c.values[key]
		return v, ok && v != ""
	}
}

// Resolver builds a resolver reading from this snapshot.
func (c *Config) Resolver(opts ...resolver.Option) *resolver.Resolver {
	opts = append([]resolver.Option{resolver.WithLookup(c.Lookup())}, opts...)
	return resolver.New(opts...)
}
