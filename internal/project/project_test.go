package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BinForm/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadProject(t *testing.T) {
	p := New("kitchen cabinets")
	p.Rects = []model.Rect{
		{ID: "a1", Label: "side", Width: 600, Height: 400},
		{ID: "a2", Label: "side", Width: 600, Height: 400},
	}
	p.Config.Kerf = 3
	p.Result = &model.PackResult{
		Bins: []model.BinLayout{{Fill: 48, Placements: []model.Placement{
			{ID: "a1", W: 600, H: 400, DrawW: 600, DrawH: 400},
		}}},
		Remaining: []model.Rect{{ID: "a2", Width: 600, Height: 400}},
	}

	path := filepath.Join(t.TempDir(), "nested", "kitchen.json")
	require.NoError(t, Save(path, p))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoadMissingProject(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadCorruptProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestNewProjectDefaults(t *testing.T) {
	p := New("test")
	assert.Equal(t, "test", p.Name)
	assert.Empty(t, p.Rects)
	assert.Nil(t, p.Result)
	assert.Equal(t, model.DefaultConfig(), p.Config)
}

func TestLoadAppConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg.DefaultConfig)

	// The defaults were persisted for next time.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestAppConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultAppConfig()
	cfg.DefaultConfig.BinWidth = 2440
	cfg.DefaultConfig.BinHeight = 1220
	cfg.RememberProject("/tmp/a.json")
	require.NoError(t, SaveAppConfig(path, cfg))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestRememberProjectDeduplicatesAndCaps(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 12; i++ {
		cfg.RememberProject(filepath.Join("/p", string(rune('a'+i))))
	}
	assert.Len(t, cfg.RecentProjects, 10)

	existing := cfg.RecentProjects[3]
	cfg.RememberProject(existing)
	assert.Len(t, cfg.RecentProjects, 10)
	assert.Equal(t, existing, cfg.RecentProjects[0])
	count := 0
	for _, p := range cfg.RecentProjects {
		if p == existing {
			count++
		}
	}
	assert.Equal(t, 1, count)

	cfg.RememberProject("/fresh")
	assert.Equal(t, "/fresh", cfg.RecentProjects[0])
	assert.Len(t, cfg.RecentProjects, 10)
}
