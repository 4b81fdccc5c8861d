// Package aggregate collapses packed bins into the display-ready cutting
// plan, procurement list, and summary metrics the rest of the system
// reports on.
package aggregate

import (
	"fmt"
	"math"
	"sort"

	"github.com/rafiqul27/rebaropt/internal/model"
	"github.com/rafiqul27/rebaropt/internal/pack"
)

// Aggregate groups bins (keyed by diameter) into display patterns, splits
// each pattern's residual into offcut or waste, and computes the
// project-wide summary metrics.
func Aggregate(binsByDia map[int][]pack.Bin, minLeftoverMm int) ([]model.CuttingPlanItem, []model.ProcurementItem, model.Summary) {
	var cuttingPlan []model.CuttingPlanItem
	var procurement []model.ProcurementItem

	totalInputLength := 0
	totalPartsLength := 0
	totalStockBars := 0
	totalWeightKg := 0.0

	for _, dia := range sortedDiaKeys(binsByDia) {
		bins := binsByDia[dia]

		patterns := map[string]*pattern{}
		var patternOrder []string

		procByStockLen := map[int]int{}
		var procOrder []int

		for _, b := range bins {
			totalInputLength += b.StockLengthMm
			totalStockBars++
			totalWeightKg += model.BarWeightKgPerMeter(dia) * (float64(b.StockLengthMm) / 1000.0)
			for _, c := range b.Cuts {
				totalPartsLength += c
			}

			sortedCuts := append([]int(nil), b.Cuts...)
			sort.Ints(sortedCuts)

			key := fmt.Sprintf("%v|%d|%v", b.IsInventory, b.StockLengthMm, sortedCuts)
			p, ok := patterns[key]
			if !ok {
				p = &pattern{
					isInventory: b.IsInventory,
					stockLength: b.StockLengthMm,
					cuts:        sortedCuts,
					remaining:   b.Remaining,
				}
				patterns[key] = p
				patternOrder = append(patternOrder, key)
			}
			p.count++

			if !b.IsInventory {
				if _, seen := procByStockLen[b.StockLengthMm]; !seen {
					procOrder = append(procOrder, b.StockLengthMm)
				}
				procByStockLen[b.StockLengthMm] += 1
			}
		}

		for _, key := range patternOrder {
			p := patterns[key]
			offcut, waste := classifyResidual(p.remaining, minLeftoverMm)
			source := model.SourceNewStock
			if p.isInventory {
				source = model.SourceExistingInventory
			}
			cuttingPlan = append(cuttingPlan, model.CuttingPlanItem{
				Dia:         dia,
				SourceType:  source,
				StockLength: p.stockLength,
				Pattern:     p.cuts,
				Count:       p.count,
				WasteMm:     waste,
				OffcutMm:    offcut,
			})
		}

		for _, sl := range procOrder {
			qty := procByStockLen[sl]
			procurement = append(procurement, model.ProcurementItem{
				Dia:         dia,
				StockLength: sl,
				Quantity:    qty,
				TotalLength: qty * sl,
			})
		}
	}

	totalWaste := totalInputLength - totalPartsLength
	wastePercent := 0.0
	if totalInputLength > 0 {
		wastePercent = round2(float64(totalWaste) / float64(totalInputLength) * 100)
	}

	summary := model.Summary{
		TotalInputLength: totalInputLength,
		TotalPartsLength: totalPartsLength,
		TotalWaste:       totalWaste,
		WastePercent:     wastePercent,
		TotalWeightKg:    round2(totalWeightKg),
		TotalStockBars:   totalStockBars,
	}

	return cuttingPlan, procurement, summary
}

type pattern struct {
	isInventory bool
	stockLength int
	cuts        []int
	remaining   int
	count       int
}

// classifyResidual implements the offcut/waste dichotomy: a remainder at
// or above minLeftoverMm is reusable offcut, otherwise it's waste. A
// negative remainder (the packing engine's force-oversize fallback) has
// nothing to reclaim, so both are reported as zero.
func classifyResidual(remaining, minLeftoverMm int) (offcut, waste int) {
	if remaining < 0 {
		return 0, 0
	}
	if remaining >= minLeftoverMm {
		return remaining, 0
	}
	return 0, remaining
}

func sortedDiaKeys(m map[int][]pack.Bin) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
