package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minpath/dijkstra"
	"github.com/katalvlaran/minpath/edgelist"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config aggregates CLI configuration.
type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GraphConfig locates and parses the edge list.
type GraphConfig struct {
	Path        string `yaml:"path"`       // file path, "-" for console input
	Terminator  string `yaml:"terminator"` // console-mode end token
	StrictCosts bool   `yaml:"strict_costs"`
}

// SearchConfig holds default path-finder options.
type SearchConfig struct {
	Frontier         string `yaml:"frontier"`           // linear|heap
	MaxDistance      *int64 `yaml:"max_distance"`       // nil: unlimited
	InfEdgeThreshold *int64 `yaml:"inf_edge_threshold"` // nil: none
	StrictWeights    bool   `yaml:"strict_weights"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // empty: disabled
}

const (
	defaultGraphPath     = "graph.txt"
	defaultFrontier      = "linear"
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvGraph     = "MINPATH_GRAPH"
	EnvFrontier  = "MINPATH_FRONTIER"
	EnvLogLevel  = "MINPATH_LOG_LEVEL"
	EnvLogFormat = "MINPATH_LOG_FORMAT"
	EnvMetrics   = "MINPATH_METRICS_FILE"
	EnvStrict    = "MINPATH_STRICT"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Graph: GraphConfig{
			Path:       defaultGraphPath,
			Terminator: edgelist.DefaultTerminator,
		},
		Search:  SearchConfig{Frontier: defaultFrontier},
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
	}
}

// Load reads a YAML file over the defaults, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.applyDefaults()
	}
	cfg.ApplyEnv(os.LookupEnv)

	return cfg, nil
}

// applyDefaults refills fields a config file left blank.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Graph.Path == "" {
		c.Graph.Path = d.Graph.Path
	}
	if c.Graph.Terminator == "" {
		c.Graph.Terminator = d.Graph.Terminator
	}
	if c.Search.Frontier == "" {
		c.Search.Frontier = d.Search.Frontier
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
}

// ApplyEnv overrides fields from the environment; lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvGraph); ok && v != "" {
		c.Graph.Path = v
	}
	if v, ok := lookup(EnvFrontier); ok && v != "" {
		c.Search.Frontier = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvMetrics); ok {
		c.Metrics.Textfile = v
	}
	if v, ok := lookup(EnvStrict); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Search.StrictWeights = b
		}
	}
}

// Validate checks value domains; it reports every problem at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Graph.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: graph.path is empty", ErrInvalid))
	}
	if _, err := dijkstra.ParseFrontier(c.Search.Frontier); err != nil {
		errs = append(errs, fmt.Errorf("%w: search.frontier: %w", ErrInvalid, err))
	}
	if d := c.Search.MaxDistance; d != nil && *d < 0 {
		errs = append(errs, fmt.Errorf("%w: search.max_distance must be >= 0, got %d", ErrInvalid, *d))
	}
	if t := c.Search.InfEdgeThreshold; t != nil && *t <= 0 {
		errs = append(errs, fmt.Errorf("%w: search.inf_edge_threshold must be > 0, got %d", ErrInvalid, *t))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalid, c.Logging.Format))
	}

	return errors.Join(errs...)
}

// SearchOptions converts the search section into path-finder options.
// Call Validate first; invalid values would panic inside the option constructors.
func (c Config) SearchOptions() ([]dijkstra.Option, error) {
	mode, err := dijkstra.ParseFrontier(c.Search.Frontier)
	if err != nil {
		return nil, err
	}
	opts := []dijkstra.Option{dijkstra.WithFrontier(mode)}
	if c.Search.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*c.Search.MaxDistance))
	}
	if c.Search.InfEdgeThreshold != nil {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(*c.Search.InfEdgeThreshold))
	}
	if c.Search.StrictWeights {
		opts = append(opts, dijkstra.WithStrictWeights())
	}

	return opts, nil
}

// ParseOptions converts the graph section into edge-list parser options.
// Console input ("-") honours the terminator token.
func (c Config) ParseOptions() []edgelist.Option {
	var opts []edgelist.Option
	if c.Graph.Path == "-" {
		opts = append(opts, edgelist.WithTerminator(c.Graph.Terminator), edgelist.WithSource("stdin"))
	}
	if c.Graph.StrictCosts {
		opts = append(opts, edgelist.WithStrictCosts())
	}

	return opts
}
