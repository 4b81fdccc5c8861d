// Package pack implements the one-dimensional bin-packing engine: a single
// best-fit-decreasing pass over a request list and supply pool (pack.go),
// a Monte Carlo improvement driver around it (montecarlo.go), and the two
// inventory strategies that shape the supply side before packing
// (supply.go).
package pack

import (
	"errors"
	"fmt"

	"github.com/rafiqul27/rebaropt/internal/request"
)

// ErrUnservedRequest is returned when no supply option fits a cut request
// and there is no new-stock option to open as an oversize fallback.
var ErrUnservedRequest = errors.New("pack: request exceeds all available supply")

// SupplyOption is one candidate source for a new bin. New-stock options
// carry an empty InventoryID and are never consumed — the same option can
// open any number of bins. Inventory options carry a unique InventoryID
// and can be consumed at most once across a pass.
type SupplyOption struct {
	LengthMm    int
	IsInventory bool
	InventoryID string
}

// Bin is one opened stock bar or inventory offcut, with its accumulated
// cuts and remaining headroom.
type Bin struct {
	StockLengthMm int
	Remaining     int
	Cuts          []int
	IsInventory   bool
	InventoryID   string
}

// Pack runs one best-fit-decreasing pass over reqs in the order given,
// against supply. preferInventoryOnTie governs which option wins when two
// candidates have an identical length-needed fit — SEQUENTIAL's own
// phases don't mix supply types so the flag is inert there; MIXED sets
// it false.
func Pack(reqs []request.CutReq, supply []SupplyOption, kerfMm int, preferInventoryOnTie bool) ([]Bin, map[string]bool, error) {
	var bins []Bin
	consumed := map[string]bool{}

	for _, r := range reqs {
		needed := r.LengthMm + kerfMm

		if idx, ok := bestOpenBin(bins, needed); ok {
			bins[idx].Remaining -= needed
			bins[idx].Cuts = append(bins[idx].Cuts, r.LengthMm)
			continue
		}

		opt, ok := selectSupply(supply, consumed, needed, preferInventoryOnTie)
		if !ok {
			opt, ok = fallbackLargestNewStock(supply)
		}
		if !ok {
			return nil, nil, fmt.Errorf("%w: dia %d length %dmm", ErrUnservedRequest, r.Dia, r.LengthMm)
		}

		if opt.IsInventory {
			consumed[opt.InventoryID] = true
		}
		bins = append(bins, Bin{
			StockLengthMm: opt.LengthMm,
			Remaining:     opt.LengthMm - needed,
			Cuts:          []int{r.LengthMm},
			IsInventory:   opt.IsInventory,
			InventoryID:   opt.InventoryID,
		})
	}

	return bins, consumed, nil
}

// bestOpenBin finds the currently open bin with the tightest fit for
// needed (minimum remaining - needed), if any has enough room.
func bestOpenBin(bins []Bin, needed int) (int, bool) {
	best := -1
	bestDiff := 0
	for i := range bins {
		if bins[i].Remaining < needed {
			continue
		}
		diff := bins[i].Remaining - needed
		if best == -1 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best, best != -1
}

// selectSupply finds the unconsumed supply option with the tightest fit
// for needed, applying the tie-break policy when two options fit equally
// well.
func selectSupply(supply []SupplyOption, consumed map[string]bool, needed int, preferInventoryOnTie bool) (SupplyOption, bool) {
	var best SupplyOption
	found := false
	bestDiff := 0

	for _, opt := range supply {
		if opt.IsInventory && consumed[opt.InventoryID] {
			continue
		}
		if opt.LengthMm < needed {
			continue
		}
		diff := opt.LengthMm - needed
		if !found {
			best, bestDiff, found = opt, diff, true
			continue
		}
		switch {
		case diff < bestDiff:
			best, bestDiff = opt, diff
		case diff == bestDiff:
			if tieBreakPrefers(opt, best, preferInventoryOnTie) {
				best = opt
			}
		}
	}
	return best, found
}

// tieBreakPrefers reports whether candidate should replace current on an
// exact-fit tie.
func tieBreakPrefers(candidate, current SupplyOption, preferInventoryOnTie bool) bool {
	if preferInventoryOnTie {
		return candidate.IsInventory && !current.IsInventory
	}
	return !candidate.IsInventory && current.IsInventory
}

// fallbackLargestNewStock returns the largest new-stock (non-inventory)
// supply option, used when nothing fits the request cleanly — an
// oversize bin is opened rather than leaving the request unserved.
func fallbackLargestNewStock(supply []SupplyOption) (SupplyOption, bool) {
	var best SupplyOption
	found := false
	for _, opt := range supply {
		if opt.IsInventory {
			continue
		}
		if !found || opt.LengthMm > best.LengthMm {
			best, found = opt, true
		}
	}
	return best, found
}

// QualityMetric is the Monte Carlo driver's optimization objective: total
// residual headroom across all bins. Lower is better.
func QualityMetric(bins []Bin) int {
	total := 0
	for _, b := range bins {
		total += b.Remaining
	}
	return total
}
