// Package config loads CLI settings from a YAML file and ORIENTEER_*
// environment variables, and validates them.
//
// Precedence, lowest first: Default, file, environment, command-line flags
// (applied by the caller).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orienteer/orienteer"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ORIENTEER_"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full CLI configuration.
type Config struct {
	Start     string        `yaml:"start" validate:"required"`
	Budget    int           `yaml:"budget" validate:"min=1"`
	Agents    int           `yaml:"agents" validate:"min=1,max=4"`
	Strategy  string        `yaml:"strategy" validate:"oneof=count set"`
	Workers   int           `yaml:"workers" validate:"min=1,max=1024"`
	MaxStates int           `yaml:"max_states" validate:"min=0"`
	Timeout   time.Duration `yaml:"timeout"`
	LogLevel  string        `yaml:"log_level" validate:"oneof=trace debug info warn warning error"`
	LogFormat string        `yaml:"log_format" validate:"oneof=text json"`
	Cache     Cache         `yaml:"cache"`
	// MetricsOut is a textfile-collector path; empty disables the export.
	MetricsOut string `yaml:"metrics_out"`
}

// Cache selects the result cache backend.
type Cache struct {
	Backend   string        `yaml:"backend" validate:"oneof=none redis"`
	RedisAddr string        `yaml:"redis_addr" validate:"required_if=Backend redis"`
	Prefix    string        `yaml:"prefix"`
	TTL       time.Duration `yaml:"ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Start:     "AA",
		Budget:    30,
		Agents:    1,
		Strategy:  "count",
		Workers:   1,
		MaxStates: orienteer.DefaultMaxStates,
		LogLevel:  "info",
		LogFormat: "text",
		Cache:     Cache{Backend: "none", Prefix: "orienteer:result:"},
	}
}

// Load builds a Config from defaults, the optional YAML file at path and the
// environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err := Decode(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Decode merges a YAML document from r into cfg. Unknown keys are rejected.
func Decode(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(cfg)
}

// ApplyEnv overrides cfg from ORIENTEER_* variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, name, v, err)
		}
		*dst = n
		return nil
	}
	dur := func(name string, dst *time.Duration) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, name, v, err)
		}
		*dst = d
		return nil
	}

	str("START", &cfg.Start)
	str("STRATEGY", &cfg.Strategy)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("METRICS_OUT", &cfg.MetricsOut)
	str("CACHE", &cfg.Cache.Backend)
	str("CACHE_PREFIX", &cfg.Cache.Prefix)
	str("REDIS_ADDR", &cfg.Cache.RedisAddr)

	return errors.Join(
		num("BUDGET", &cfg.Budget),
		num("AGENTS", &cfg.Agents),
		num("WORKERS", &cfg.Workers),
		num("MAX_STATES", &cfg.MaxStates),
		dur("TIMEOUT", &cfg.Timeout),
		dur("CACHE_TTL", &cfg.Cache.TTL),
	)
}

// Validate checks struct tags and the constraints tags cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative (%s)", ErrInvalidConfig, c.Timeout)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache ttl cannot be negative (%s)", ErrInvalidConfig, c.Cache.TTL)
	}

	return nil
}

// Query returns the search query described by c.
func (c Config) Query() orienteer.Query {
	return orienteer.Query{Start: c.Start, Budget: c.Budget, Agents: c.Agents}
}

// Dominance parses the configured strategy.
func (c Config) Dominance() (orienteer.Dominance, error) {
	return orienteer.ParseDominance(c.Strategy)
}

// SearchOptions translates c into engine options. Dominance is included.
func (c Config) SearchOptions() ([]orienteer.Option, error) {
	d, err := c.Dominance()
	if err != nil {
		return nil, err
	}

	return []orienteer.Option{
		orienteer.WithDominance(d),
		orienteer.WithWorkers(c.Workers),
		orienteer.WithMaxStates(c.MaxStates),
		orienteer.WithTimeLimit(c.Timeout),
	}, nil
}

// NewLogger builds a logrus logger writing to w with the configured level
// and formatter.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	switch c.LogFormat {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	return l, nil
}
