// Package config loads poker-odds settings and named scenarios from HCL.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerodds/internal/game"
)

// ErrUnknownScenario is returned when a scenario name is not in the config
var ErrUnknownScenario = errors.New("unknown scenario")

const (
	DefaultLogLevel         = "info"
	DefaultProgressInterval = 250 * time.Millisecond
)

// Config represents the complete poker-odds configuration
type Config struct {
	LogLevel string `hcl:"log_level,optional"`
	// Workers is the number of enumeration goroutines; 0 picks one per CPU.
	Workers int `hcl:"workers,optional"`
	// ProgressInterval is a Go duration string such as "500ms".
	ProgressInterval string `hcl:"progress_interval,optional"`
	// Seed shuffles the exploration order when non-zero.
	Seed      int64      `hcl:"seed,optional"`
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario is a named set of hands and an optional board
type Scenario struct {
	Name  string   `hcl:"name,label"`
	Hands []string `hcl:"hands"`
	Board string   `hcl:"board,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel:         DefaultLogLevel,
		ProgressInterval: DefaultProgressInterval.String(),
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	return decode(file.Body)
}

// Parse reads configuration from HCL source. filename only appears in
// error messages.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.ProgressInterval == "" {
		config.ProgressInterval = DefaultProgressInterval.String()
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}
	if d, err := time.ParseDuration(c.ProgressInterval); err != nil {
		return fmt.Errorf("invalid progress_interval %q: %w", c.ProgressInterval, err)
	} else if d <= 0 {
		return fmt.Errorf("progress_interval must be positive: %s", d)
	}

	seen := make(map[string]bool, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if seen[s.Name] {
			return fmt.Errorf("scenario %s: defined twice", s.Name)
		}
		seen[s.Name] = true
		if _, err := s.Game(); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}

	return nil
}

// Level returns the configured log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Interval returns the progress interval, falling back to the default
func (c *Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.ProgressInterval)
	if err != nil || d <= 0 {
		return DefaultProgressInterval
	}
	return d
}

// Scenario returns the named scenario
func (c *Config) Scenario(name string) (*Scenario, error) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
}

// Game parses the scenario into a validated game
func (s *Scenario) Game() (*game.Game, error) {
	return game.ParseGame(s.Hands, s.Board)
}
