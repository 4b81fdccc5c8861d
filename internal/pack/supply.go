package pack

import (
	"fmt"
	"sort"

	"github.com/rafiqul27/rebaropt/internal/model"
	"github.com/rafiqul27/rebaropt/internal/request"
)

// BuildNewStockSupply turns a descending stock-length list into infinite
// new-stock supply options.
func BuildNewStockSupply(stockLengths []int) []SupplyOption {
	opts := make([]SupplyOption, len(stockLengths))
	for i, l := range stockLengths {
		opts[i] = SupplyOption{LengthMm: l}
	}
	return opts
}

// BuildInventorySupply expands each inventory batch into one finite,
// uniquely-identified option per unit, so each can be consumed at most
// once across a pass.
func BuildInventorySupply(inventory []model.OffcutInventoryItem) []SupplyOption {
	var opts []SupplyOption
	for _, item := range inventory {
		for u := 0; u < item.Quantity; u++ {
			opts = append(opts, SupplyOption{
				LengthMm:    item.LengthMm,
				IsInventory: true,
				InventoryID: fmt.Sprintf("%s#%d", item.ID, u),
			})
		}
	}
	return opts
}

// BuildMixedSupply combines new-stock and inventory options into a single
// pool, for the MIXED strategy's single packing pass.
func BuildMixedSupply(stockLengths []int, inventory []model.OffcutInventoryItem) []SupplyOption {
	return append(BuildNewStockSupply(stockLengths), BuildInventorySupply(inventory)...)
}

// sortDescending returns a copy of reqs sorted by length descending (BFD
// seed order), stable so equal-length requests keep their relative order.
func sortDescending(reqs []request.CutReq) []request.CutReq {
	out := append([]request.CutReq(nil), reqs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LengthMm > out[j].LengthMm
	})
	return out
}

// SequentialPack implements the SEQUENTIAL inventory strategy: consume
// inventory first (best-fit, greedy over a descending request order),
// then hand whatever couldn't be served from inventory to the Monte Carlo
// driver running over new-stock supply only.
func SequentialPack(reqs []request.CutReq, stockLengths []int, inventory []model.OffcutInventoryItem, kerfMm int, level model.OptimizationLevel, seed int64) ([]Bin, map[string]bool, error) {
	descReqs := sortDescending(reqs)
	invBins, deferred, consumed := sequentialInventoryPass(descReqs, inventory, kerfMm)

	newSupply := BuildNewStockSupply(stockLengths)
	newBins, _, err := MonteCarlo(deferred, newSupply, kerfMm, level, seed, true)
	if err != nil {
		return nil, nil, err
	}

	return append(invBins, newBins...), consumed, nil
}

// sequentialInventoryPass greedily fits descReqs into inventory, in
// smallest-usable-first unit order, reusing already-opened inventory bins
// before opening a new one. Requests that don't fit any remaining
// inventory unit are returned as deferred, in their original order.
func sequentialInventoryPass(descReqs []request.CutReq, inventory []model.OffcutInventoryItem, kerfMm int) ([]Bin, []request.CutReq, map[string]bool) {
	sortedInventory := append([]model.OffcutInventoryItem(nil), inventory...)
	sort.SliceStable(sortedInventory, func(i, j int) bool {
		return sortedInventory[i].LengthMm < sortedInventory[j].LengthMm
	})
	supply := BuildInventorySupply(sortedInventory)

	var bins []Bin
	var deferred []request.CutReq
	consumed := map[string]bool{}

	for _, r := range descReqs {
		needed := r.LengthMm + kerfMm

		if idx, ok := bestOpenBin(bins, needed); ok {
			bins[idx].Remaining -= needed
			bins[idx].Cuts = append(bins[idx].Cuts, r.LengthMm)
			continue
		}

		opt, ok := selectSupply(supply, consumed, needed, true)
		if !ok {
			deferred = append(deferred, r)
			continue
		}

		consumed[opt.InventoryID] = true
		bins = append(bins, Bin{
			StockLengthMm: opt.LengthMm,
			Remaining:     opt.LengthMm - needed,
			Cuts:          []int{r.LengthMm},
			IsInventory:   true,
			InventoryID:   opt.InventoryID,
		})
	}

	return bins, deferred, consumed
}

// MixedPack implements the MIXED inventory strategy: a single supply pool
// of new stock and inventory, run once through the Monte Carlo driver.
// preferInventoryOnTie is false here per the strict-MIXED tie policy
// (new stock wins an exact tie so unique inventory units aren't exhausted
// on an interchangeable fit).
func MixedPack(reqs []request.CutReq, stockLengths []int, inventory []model.OffcutInventoryItem, kerfMm int, level model.OptimizationLevel, seed int64) ([]Bin, map[string]bool, error) {
	supply := BuildMixedSupply(stockLengths, inventory)
	return MonteCarlo(reqs, supply, kerfMm, level, seed, false)
}
