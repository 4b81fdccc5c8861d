package model

import "sort"

// DetectReusableOffcuts scans a finished cutting plan and converts every
// bin's leftover length into a batch of OffcutInventoryItem, for hand-off
// into the next project's InventoryBook. Leftovers shorter than
// minLeftoverMm are waste, not offcut, and are skipped — the same threshold
// the aggregator uses to split a bin's remainder into offcut or waste.
func DetectReusableOffcuts(plan []CuttingPlanItem, minLeftoverMm int) []OffcutInventoryItem {
	type key struct {
		dia      int
		lengthMm int
	}
	byKey := map[key]int{}

	for _, item := range plan {
		if item.OffcutMm < minLeftoverMm {
			continue
		}
		k := key{dia: item.Dia, lengthMm: item.OffcutMm}
		byKey[k] += item.Count
	}

	offcuts := make([]OffcutInventoryItem, 0, len(byKey))
	for k, qty := range byKey {
		offcuts = append(offcuts, NewOffcutInventoryItem(k.dia, k.lengthMm, qty))
	}

	sort.Slice(offcuts, func(i, j int) bool {
		if offcuts[i].Dia != offcuts[j].Dia {
			return offcuts[i].Dia < offcuts[j].Dia
		}
		return offcuts[i].LengthMm > offcuts[j].LengthMm
	})

	return offcuts
}

// TotalReusableLength returns the combined length, in mm, represented by a
// set of offcut inventory items (length times quantity, summed).
func TotalReusableLength(offcuts []OffcutInventoryItem) int {
	total := 0
	for _, o := range offcuts {
		total += o.LengthMm * o.Quantity
	}
	return total
}

// MergeOffcuts combines two offcut inventory lists, summing quantities for
// identical (dia, lengthMm) batches rather than keeping them as separate
// entries with separate IDs.
func MergeOffcuts(a, b []OffcutInventoryItem) []OffcutInventoryItem {
	type key struct {
		dia      int
		lengthMm int
	}
	byKey := map[key]int{}
	order := []key{}

	add := func(items []OffcutInventoryItem) {
		for _, o := range items {
			k := key{dia: o.Dia, lengthMm: o.LengthMm}
			if _, ok := byKey[k]; !ok {
				order = append(order, k)
			}
			byKey[k] += o.Quantity
		}
	}
	add(a)
	add(b)

	merged := make([]OffcutInventoryItem, 0, len(order))
	for _, k := range order {
		merged = append(merged, NewOffcutInventoryItem(k.dia, k.lengthMm, byKey[k]))
	}
	return merged
}
