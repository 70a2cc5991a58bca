// Copyright (c) 2025 github.com/kslamph
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package config loads the YAML subscription configuration a
// chainwatch run is driven by: which network to connect to, and which
// contract events to decode once connected.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Network       NetworkConfig        `yaml:"network"`
	Subscriptions []SubscriptionConfig `yaml:"subscriptions"`
	Logging       LoggingConfig        `yaml:"logging"`
	Metrics       MetricsConfig        `yaml:"metrics"`
}

// NetworkConfig names the chain endpoint to subscribe against.
type NetworkConfig struct {
	Name           string        `yaml:"name"`
	WSURL          string        `yaml:"ws_url"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps"`
}

// SubscriptionConfig names one contract and the events to decode from
// it. Exactly one of ABIFile or Events should carry enough type
// information to build an EventDescriptor: Events gives bare
// signatures for indexed-flag-free decoding, ABIFile gives full
// Solidity ABI JSON including indexed flags.
type SubscriptionConfig struct {
	ContractAddress string   `yaml:"contract_address"`
	Events          []string `yaml:"events"`
	ABIFile         string   `yaml:"abi_file"`
	Decimals        int32    `yaml:"decimals"`
}

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig controls the Prometheus /metrics HTTP endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Z_][A-Z0-9_]*)(:([^}]*))?\}`)

// Load reads filename, loads a .env file from the working directory
// (if present) into the process environment, substitutes ${VAR} / ${VAR:default} references, parses
// the result as YAML, lets a set LOG_LEVEL environment variable
// override the YAML's logging.level, applies defaults, and validates
// the result.
func Load(filename string) (*Config, error) {
	_ = godotenv.Load() // best effort; a missing .env is not an error

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", filename, err)
	}

	substituted := substituteEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(substituted), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// substituteEnvVars replaces ${VAR} and ${VAR:default} with the named
// environment variable, or default when the variable is unset or
// empty; a reference with no default and no set variable is left
// untouched, so the literal ${VAR} text reaches the YAML parser (a
// string field keeps it verbatim; a non-string field fails to parse).
func substituteEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, def := m[1], m[3]
		if v := os.Getenv(name); v != "" {
			return v
		}
		if m[2] != "" {
			return def
		}
		return match
	})
}

func (c *Config) applyDefaults() {
	if c.Network.ReconnectDelay == 0 {
		c.Network.ReconnectDelay = 5 * time.Second
	}
	if c.Network.RateLimitRPS == 0 {
		c.Network.RateLimitRPS = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9090"
	}
	for i := range c.Subscriptions {
		if c.Subscriptions[i].Decimals == 0 {
			c.Subscriptions[i].Decimals = 18
		}
	}
}

// Validate reports every configuration problem at once, the way a
// misconfigured deploy wants to see all its mistakes in one pass
// rather than one fix-and-retry cycle per field.
func (c *Config) Validate() error {
	var problems []string

	if c.Network.WSURL == "" {
		problems = append(problems, "network.ws_url is required")
	}
	if len(c.Subscriptions) == 0 {
		problems = append(problems, "at least one subscription is required")
	}
	for i, s := range c.Subscriptions {
		if !common.IsHexAddress(s.ContractAddress) {
			problems = append(problems, fmt.Sprintf("subscriptions[%d].contract_address is not a valid address: %q", i, s.ContractAddress))
		}
		if len(s.Events) == 0 && s.ABIFile == "" {
			problems = append(problems, fmt.Sprintf("subscriptions[%d] needs events or abi_file", i))
		}
	}

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		problems = append(problems, "logging.level must be one of: trace, debug, info, warn, error")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
