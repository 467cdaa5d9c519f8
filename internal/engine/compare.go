package engine

import "github.com/piwi3910/BinForm/internal/model"

// AlgorithmComparison holds the outcome of packing one input with one
// placement heuristic, with the headline numbers pulled out for display.
type AlgorithmComparison struct {
	Algorithm model.Algorithm
	Result    model.PackResult
	BinsUsed  int
	TotalFill float64
	Unplaced  int
}

// CompareAlgorithms packs the same input with every placement heuristic so
// callers can pick the one that suits the job. The configuration's Algorithm
// field is overridden per run; everything else (spacing, rotation, seed) is
// shared, so results are directly comparable.
func CompareAlgorithms(cfg model.Config, rects []model.Rect) ([]AlgorithmComparison, error) {
	comparisons := make([]AlgorithmComparison, 0, len(model.Algorithms()))
	for _, algo := range model.Algorithms() {
		c := cfg
		c.Algorithm = algo
		result, err := Pack(c, rects)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, AlgorithmComparison{
			Algorithm: algo,
			Result:    result,
			BinsUsed:  len(result.Bins),
			TotalFill: result.TotalFill(),
			Unplaced:  len(result.Remaining),
		})
	}
	return comparisons, nil
}
