package pack

import (
	"math/rand"
	"sort"

	"github.com/rafiqul27/rebaropt/internal/model"
	"github.com/rafiqul27/rebaropt/internal/request"
)

// MonteCarlo runs the seeded improvement loop over Pack: a descending-length
// seed pass, then level.Iterations()-1 further passes over uniformly
// shuffled request orders, keeping whichever pass minimizes QualityMetric.
// It is deterministic for a fixed seed, fixed inputs, and fixed level —
// property 8 in the testable-properties catalog.
func MonteCarlo(reqs []request.CutReq, supply []SupplyOption, kerfMm int, level model.OptimizationLevel, seed int64, preferInventoryOnTie bool) ([]Bin, map[string]bool, error) {
	budget := level.Iterations()

	seedOrder := append([]request.CutReq(nil), reqs...)
	sort.SliceStable(seedOrder, func(i, j int) bool {
		return seedOrder[i].LengthMm > seedOrder[j].LengthMm
	})

	bestBins, bestConsumed, err := Pack(seedOrder, supply, kerfMm, preferInventoryOnTie)
	if err != nil {
		return nil, nil, err
	}
	bestQuality := QualityMetric(bestBins)

	rng := rand.New(rand.NewSource(seed))
	for i := 1; i < budget; i++ {
		shuffled := append([]request.CutReq(nil), reqs...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		bins, consumed, err := Pack(shuffled, supply, kerfMm, preferInventoryOnTie)
		if err != nil {
			return nil, nil, err
		}
		if quality := QualityMetric(bins); quality < bestQuality {
			bestBins, bestConsumed, bestQuality = bins, consumed, quality
		}
	}

	return bestBins, bestConsumed, nil
}
