// SPDX-License-Identifier: MIT

// Package config loads the waypath YAML configuration: markers, the
// eligibility filter, blocked segments, annealing knobs and the optional MQTT
// progress sink.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/geometry"
	"github.com/katalvlaran/waypath/internal/waypoint"
	"github.com/katalvlaran/waypath/tsp"
)

// ErrInvalid reports a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid")

const (
	// EnvBroker overrides mqtt.broker when set.
	EnvBroker = "MQTT_BROKER"

	DefaultClientID = "waypath"
	DefaultTopic    = "waypath/progress"
)

// Config is the file layout.
type Config struct {
	Markers []waypoint.Marker `yaml:"markers"`
	Filter  waypoint.Filter   `yaml:"filter,omitempty"`

	// Route is a saved custom route, marker names in visiting order.
	Route []string `yaml:"route,omitempty"`

	// Blocked lists segments as [[ax, ay], [bx, by]].
	Blocked            [][2][2]float64 `yaml:"blocked,omitempty"`
	UseStreetBlockings bool            `yaml:"use_street_blockings,omitempty"`

	// Penalty multiplies blocked edges; 0 selects geometry.PenaltyFactor.
	Penalty float64 `yaml:"penalty,omitempty"`

	Anneal Anneal `yaml:"anneal,omitempty"`
	MQTT   MQTT   `yaml:"mqtt,omitempty"`
}

// Anneal carries tsp.Options fields that make sense in a file.
type Anneal struct {
	TempCoeff float64 `yaml:"temp_coeff,omitempty"`
	Seed      int64   `yaml:"seed,omitempty"`
}

// MQTT configures progress publishing. An empty Broker disables it.
type MQTT struct {
	Broker   string `yaml:"broker,omitempty"`
	ClientID string `yaml:"client_id,omitempty"`
	Topic    string `yaml:"topic,omitempty"`
	// Every publishes one message per Every iterations; 0 publishes none.
	Every int `yaml:"every,omitempty"`
}

// Load reads, decodes and validates the file at path, then applies
// environment overrides and defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

// Parse decodes and validates YAML and fills defaults.
// Environment overrides are not applied.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks field ranges and marker names. A name may repeat only on
// different days.
func (c *Config) Validate() error {
	type key struct {
		name string
		day  int
	}
	seen := make(map[key]int, len(c.Markers))
	for i, m := range c.Markers {
		if m.Name == "" {
			return fmt.Errorf("%w: markers[%d].name is required", ErrInvalid, i)
		}
		k := key{m.Name, m.Day}
		if j, dup := seen[k]; dup {
			return fmt.Errorf("%w: markers[%d] %q day %d duplicates markers[%d]", ErrInvalid, i, m.Name, m.Day, j)
		}
		seen[k] = i
	}

	if p := c.Penalty; p != 0 && (math.IsNaN(p) || math.IsInf(p, 0) || p < 1) {
		return fmt.Errorf("%w: penalty must be >= 1, got %v", ErrInvalid, p)
	}
	if tc := c.Anneal.TempCoeff; math.IsNaN(tc) || tc < 0 || tc >= 1 {
		return fmt.Errorf("%w: anneal.temp_coeff must be in [0,1), got %v", ErrInvalid, tc)
	}
	if c.MQTT.Every < 0 {
		return fmt.Errorf("%w: mqtt.every must be >= 0, got %d", ErrInvalid, c.MQTT.Every)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = DefaultClientID
	}
	if c.MQTT.Topic == "" {
		c.MQTT.Topic = DefaultTopic
	}
}

func (c *Config) applyEnv() {
	if b := os.Getenv(EnvBroker); b != "" {
		c.MQTT.Broker = b
	}
}

// Segments returns the configured blocked segments. With no explicit list and
// use_street_blockings set, the built-in street blockings are used.
func (c *Config) Segments() []geometry.Segment {
	if len(c.Blocked) == 0 {
		if c.UseStreetBlockings {
			return geometry.StreetBlockings()
		}
		return nil
	}

	segs := make([]geometry.Segment, len(c.Blocked))
	for i, b := range c.Blocked {
		segs[i] = geometry.NewSegment(b[0][0], b[0][1], b[1][0], b[1][1])
	}

	return segs
}

// Model builds the distance model for the configured segments and penalty.
func (c *Config) Model() *geometry.DistanceModel {
	opts := []geometry.Option{geometry.WithBlocked(c.Segments()...)}
	if c.Penalty != 0 {
		opts = append(opts, geometry.WithPenalty(c.Penalty))
	}

	return geometry.NewDistanceModel(opts...)
}

// Options maps the anneal section onto tsp.Options.
func (c *Config) Options() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.TempCoeff = c.Anneal.TempCoeff
	opts.Seed = c.Anneal.Seed

	return opts
}

// Eligible returns the markers that pass the filter, in file order.
func (c *Config) Eligible() []waypoint.Marker {
	return c.Filter.Apply(c.Markers)
}

// Resolve looks up route names on the active day of each category.
func (c *Config) Resolve(names []string) (found []waypoint.Marker, missing []string) {
	return waypoint.Resolve(names, c.Markers, c.Filter.Cycle)
}
