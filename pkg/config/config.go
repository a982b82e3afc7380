// Package config loads application configuration from defaults, an
// optional skillscope.toml, environment variables, and command-line
// flags, in increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all configuration for the application
type Config struct {
	Input      string `koanf:"input"`   // skills file or directory to analyze
	WebMode    bool   `koanf:"web"`     // serve the dashboard API instead of printing
	Port       int    `koanf:"port"`    // web server port
	Watch      bool   `koanf:"watch"`   // re-analyze when the input changes
	Open       bool   `koanf:"open"`    // open the dashboard in a browser
	Seed       int64  `koanf:"seed"`    // layout jitter seed; 0 = time-based
	NoJitter   bool   `koanf:"nojitter"` // disable layout jitter entirely
	Verbosity  string `koanf:"verbosity"`
	VerboseCnt int    `koanf:"verbose"`
}

// Load loads configuration with priority: flags > env > config file > defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"input":     ".",
		"web":       false,
		"port":      8080,
		"watch":     false,
		"open":      false,
		"seed":      0,
		"nojitter":  false,
		"verbosity": "",
		"verbose":   0,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Optional config file; absence is not an error
	_ = k.Load(file.Provider("skillscope.toml"), toml.Parser())

	// Environment variables, e.g. SKILLSCOPE_PORT=9090
	if err := k.Load(env.Provider("SKILLSCOPE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "SKILLSCOPE_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Helper to use a map as a koanf provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
