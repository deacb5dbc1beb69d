package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/dijkstra"
	"github.com/katalvlaran/minpath/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "linear", cfg.Search.Frontier)
	assert.Equal(t, "end", cfg.Graph.Terminator)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
graph:
  path: roads.yaml
search:
  frontier: heap
  max_distance: 50
logging:
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "roads.yaml", cfg.Graph.Path)
	assert.Equal(t, "end", cfg.Graph.Terminator, "blank fields keep defaults")
	assert.Equal(t, "heap", cfg.Search.Frontier)
	require.NotNil(t, cfg.Search.MaxDistance)
	assert.Equal(t, int64(50), *cfg.Search.MaxDistance)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "search: [oops"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvGraph:     "-",
		config.EnvFrontier:  "heap",
		config.EnvLogLevel:  "debug",
		config.EnvLogFormat: "json",
		config.EnvMetrics:   "/tmp/minpath.prom",
		config.EnvStrict:    "true",
	}
	cfg := config.Default()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "-", cfg.Graph.Path)
	assert.Equal(t, "heap", cfg.Search.Frontier)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/minpath.prom", cfg.Metrics.Textfile)
	assert.True(t, cfg.Search.StrictWeights)
	assert.False(t, cfg.Graph.StrictCosts, "strict_costs is only set from the config file")

	// Console input gets the terminator and the stdin source name.
	assert.Len(t, cfg.ParseOptions(), 2)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	neg := int64(-1)
	zero := int64(0)
	cfg := config.Default()
	cfg.Graph.Path = " "
	cfg.Search.Frontier = "fibonacci"
	cfg.Search.MaxDistance = &neg
	cfg.Search.InfEdgeThreshold = &zero
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, dijkstra.ErrBadFrontier)
	for _, field := range []string{"graph.path", "search.frontier", "search.max_distance", "search.inf_edge_threshold", "logging.format"} {
		assert.Contains(t, err.Error(), field)
	}

	_, err = cfg.SearchOptions()
	assert.ErrorIs(t, err, dijkstra.ErrBadFrontier)
}
