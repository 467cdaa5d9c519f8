package engine

import (
	"math/rand"

	"github.com/piwi3910/BinForm/internal/model"
)

// Pack distributes rectangles across as many bins as the configuration
// allows. Bins fill one at a time; whatever a bin rejects carries over to the
// next round. The remainder is shuffled between rounds with the seeded RNG so
// a pathological ordering cannot starve the same items every round; for a
// fixed seed the whole run is deterministic.
//
// Packing stops when everything is placed, the MaxBins cap is reached
// (0 means unlimited), or a round places nothing.
func Pack(cfg model.Config, rects []model.Rect) (model.PackResult, error) {
	if err := cfg.Validate(); err != nil {
		return model.PackResult{}, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	remaining := append([]model.Rect(nil), rects...)
	binArea := cfg.BinWidth * cfg.BinHeight

	var result model.PackResult
	for len(remaining) > 0 && (cfg.MaxBins <= 0 || len(result.Bins) < cfg.MaxBins) {
		placed, rest := packBin(cfg, remaining)
		if len(placed) == 0 {
			// No progress is possible; everything left is unplaceable.
			break
		}

		var used float64
		for _, p := range placed {
			used += p.DrawArea()
		}
		result.Bins = append(result.Bins, model.BinLayout{
			Placements: placed,
			Fill:       used / binArea * 100,
		})

		remaining = rest
		rng.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
	}
	result.Remaining = remaining
	return result, nil
}
