package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero bin width", func(c *Config) { c.BinWidth = 0 }},
		{"negative bin height", func(c *Config) { c.BinHeight = -10 }},
		{"negative inner margin", func(c *Config) { c.InnerMargin = -1 }},
		{"negative edge margin", func(c *Config) { c.EdgeMargin = -0.5 }},
		{"negative kerf", func(c *Config) { c.Kerf = -2 }},
		{"negative max bins", func(c *Config) { c.MaxBins = -1 }},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "guillotine" }},
		{"empty algorithm", func(c *Config) { c.Algorithm = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestValidateAcceptsBoundaryValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InnerMargin = 0
	cfg.EdgeMargin = 0
	cfg.Kerf = 0
	cfg.MaxBins = 0
	assert.NoError(t, cfg.Validate())
}

func TestAlgorithmValid(t *testing.T) {
	for _, a := range Algorithms() {
		assert.True(t, a.Valid(), string(a))
	}
	assert.False(t, Algorithm("shelf").Valid())
}

func TestIsMaxRects(t *testing.T) {
	assert.True(t, AlgorithmMaxRectsBSSF.IsMaxRects())
	assert.True(t, AlgorithmMaxRectsBAF.IsMaxRects())
	assert.False(t, AlgorithmBottomLeft.IsMaxRects())
	assert.False(t, AlgorithmSkyline.IsMaxRects())
}

func TestNewRectAssignsID(t *testing.T) {
	r := NewRect("shelf side", 600, 400)
	assert.Len(t, r.ID, 8)
	assert.Equal(t, "shelf side", r.Label)
	assert.Equal(t, 240000.0, r.Area())

	other := NewRect("", 1, 1)
	assert.NotEqual(t, r.ID, other.ID)
}
