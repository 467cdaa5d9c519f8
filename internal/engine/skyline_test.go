package engine

import (
	"testing"

	"github.com/piwi3910/BinForm/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkylineMergesEqualHeightSegments(t *testing.T) {
	b := newSkylineBin(100, 100, false)

	p1, ok := b.insert(model.Rect{ID: "a", Width: 50, Height: 20})
	require.True(t, ok)
	assert.Equal(t, 0.0, p1.X)
	assert.Equal(t, 0.0, p1.Y)

	p2, ok := b.insert(model.Rect{ID: "b", Width: 50, Height: 20})
	require.True(t, ok)
	assert.Equal(t, 50.0, p2.X)
	assert.Equal(t, 0.0, p2.Y)

	// Both halves reach height 20, so the profile collapses to one segment.
	require.Len(t, b.sky, 1)
	assert.Equal(t, skySegment{x: 0, y: 20, w: 100}, b.sky[0])

	p3, ok := b.insert(model.Rect{ID: "c", Width: 100, Height: 20})
	require.True(t, ok)
	assert.Equal(t, 0.0, p3.X)
	assert.Equal(t, 20.0, p3.Y)
}

func TestSkylineNeedsSingleSegmentWideEnough(t *testing.T) {
	b := newSkylineBin(100, 100, false)

	_, ok := b.insert(model.Rect{ID: "tall", Width: 30, Height: 40})
	require.True(t, ok)
	require.Len(t, b.sky, 2)

	// A rect only starts on a segment at least as wide as itself, so the
	// full-width bar is rejected while the profile is split.
	_, ok = b.insert(model.Rect{ID: "wide", Width: 100, Height: 10})
	assert.False(t, ok)

	p, ok := b.insert(model.Rect{ID: "low", Width: 70, Height: 10})
	require.True(t, ok)
	assert.Equal(t, 30.0, p.X)
	assert.Equal(t, 0.0, p.Y)
}

func TestSkylineExactTiling(t *testing.T) {
	b := newSkylineBin(100, 100, false)
	for _, id := range []string{"a", "b", "c", "d"} {
		_, ok := b.insert(model.Rect{ID: id, Width: 50, Height: 50})
		require.True(t, ok, id)
	}
	assert.Len(t, b.placed, 4)
	assertNoOverlap(t, b.placed)
	require.Len(t, b.sky, 1)
	assert.Equal(t, skySegment{x: 0, y: 100, w: 100}, b.sky[0])
}

func TestSkylineRespectsHeightLimit(t *testing.T) {
	b := newSkylineBin(100, 50, false)

	_, ok := b.insert(model.Rect{ID: "a", Width: 100, Height: 30})
	require.True(t, ok)

	// Would top out at 60 in a 50-high bin.
	_, ok = b.insert(model.Rect{ID: "b", Width: 100, Height: 30})
	assert.False(t, ok)
}

func TestSkylineRotationFallback(t *testing.T) {
	b := newSkylineBin(100, 50, true)

	p, ok := b.insert(model.Rect{ID: "a", Width: 40, Height: 90})
	require.True(t, ok)
	assert.True(t, p.Rotated)
	assert.Equal(t, 90.0, p.W)
	assert.Equal(t, 40.0, p.H)
}

func TestSkylineSegmentsAlwaysPartitionWidth(t *testing.T) {
	b := newSkylineBin(100, 200, true)
	sizes := [][2]float64{{30, 40}, {70, 10}, {25, 25}, {50, 15}, {10, 60}}
	for i, wh := range sizes {
		_, ok := b.insert(model.Rect{ID: string(rune('a' + i)), Width: wh[0], Height: wh[1]})
		require.True(t, ok)

		cur := 0.0
		for _, s := range b.sky {
			assert.InDelta(t, cur, s.x, 1e-9)
			cur += s.w
		}
		assert.InDelta(t, 100.0, cur, 1e-9)
	}
}
