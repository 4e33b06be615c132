package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordpath/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "wordpath.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "datos.txt", cfg.Dictionary)
	assert.Equal(t, "casa", cfg.Start)
	assert.Equal(t, "perro", cfg.Goal)
	assert.Equal(t, 1, cfg.Graph.MinDegree)
	assert.Equal(t, 2, cfg.Graph.MaxDegree)
	require.NoError(t, cfg.Validate())
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	p := writeFile(t, `
dictionary: words.yaml
start: sol
graph:
  maxDegree: 3
  seed: 7
logging:
  format: json
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "words.yaml", cfg.Dictionary)
	assert.Equal(t, "sol", cfg.Start)
	assert.Equal(t, "perro", cfg.Goal, "unset keys keep defaults")
	assert.Equal(t, 1, cfg.Graph.MinDegree)
	assert.Equal(t, 3, cfg.Graph.MaxDegree)
	assert.Equal(t, int64(7), cfg.Graph.Seed)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	p := writeFile(t, "goal: luna\ngraph:\n  seed: 7\n")
	t.Setenv("WORDPATH_GOAL", "mar")
	t.Setenv("WORDPATH_SEED", "99")
	t.Setenv("WORDPATH_MAX_DEGREE", "4")
	t.Setenv("WORDPATH_METRICS", "true")

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "mar", cfg.Goal)
	assert.Equal(t, int64(99), cfg.Graph.Seed)
	assert.Equal(t, 4, cfg.Graph.MaxDegree)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "graph: [\n"))
	require.Error(t, err)

	t.Setenv("WORDPATH_MIN_DEGREE", "many")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"min zero":     func(c *config.Config) { c.Graph.MinDegree = 0 },
		"max < min":    func(c *config.Config) { c.Graph.MinDegree, c.Graph.MaxDegree = 3, 2 },
		"no goal":      func(c *config.Config) { c.Goal = "" },
		"no dict":      func(c *config.Config) { c.Dictionary = "" },
		"bad renderer": func(c *config.Config) { c.Render.Format = "png" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
