package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "katas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
two_sum:
  nums: [3, 2, 4]
  target: 6
dijkstra:
  graph:
    0: [{to: 1, weight: 2}]
    1: []
  start: 0
pets:
  pets:
    - {name: Nemo, type: fish, age: 0}
  lookup: NEMO
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 4}, cfg.TwoSum.Nums)
	assert.Equal(t, 6, cfg.TwoSum.Target)
	assert.Equal(t, []config.EdgeConfig{{To: 1, Weight: 2}}, cfg.Dijkstra.Graph[0])
	assert.Len(t, cfg.Dijkstra.Graph, 2, "graph is replaced, not merged")
	assert.Len(t, cfg.Pets.Pets, 1)
	assert.Equal(t, "NEMO", cfg.Pets.Lookup)
	// Untouched sections keep defaults.
	assert.Equal(t, "Hola mundo", cfg.CharCount.Text)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_StartOnlyKeepsDefaultGraph(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "dijkstra:\n  start: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Dijkstra.Start)
	assert.Equal(t, config.DefaultConfig().Dijkstra.Graph, cfg.Dijkstra.Graph)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := config.Load(writeFile(t, "two_sum: [this is: not valid"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_UnsortedSearchFixture(t *testing.T) {
	_, err := config.Load(writeFile(t, "binary_search:\n  sorted: [3, 1, 2]\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_LoggingLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "chatty"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg.Logging.Level = "DEBUG"
	assert.NoError(t, cfg.Validate())
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "katas.yaml")
	cfg := config.DefaultConfig()
	cfg.Reverse.Text = "stressed"
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "stressed", got.Reverse.Text)
	assert.Len(t, got.Dijkstra.Graph, len(cfg.Dijkstra.Graph))
	assert.Equal(t, cfg.Dijkstra.Graph[2], got.Dijkstra.Graph[2])
}
