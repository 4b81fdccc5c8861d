// Package rules provides the two pure lookups the rest of the pipeline is
// built on: lap length by (diameter, lap case), and stock length options by
// diameter. Both are plain maps over the project's input tables, with
// fallbacks applied when a project leaves a diameter unconfigured.
package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rafiqul27/rebaropt/internal/model"
)

// ErrEmptyCatalog is returned when a project has no stock catalog entries at
// all.
var ErrEmptyCatalog = errors.New("rules: stock catalog is empty")

// fallbackLapMultiplier is applied to the diameter when no explicit lap
// rule matches: lengthMm = fallbackLapMultiplier * dia.
const fallbackLapMultiplier = 50

// fallbackStockLengthMm is used for a diameter with no catalog entry.
const fallbackStockLengthMm = 12000

// Table wraps a project's lap rules and stock catalog into lookups.
type Table struct {
	laps  map[lapKey]int
	stock map[int][]int
}

type lapKey struct {
	dia     int
	lapCase model.LapCase
}

// NewTable builds a Table from a project's rule and stock catalog slices.
// It returns ErrEmptyCatalog whenever stock is empty. With a non-empty
// catalog, a lookup for a diameter the catalog does not list still
// succeeds via the fallback stock length.
func NewTable(laps []model.LapRule, stock []model.StockCatalogItem) (*Table, error) {
	if len(stock) == 0 {
		return nil, ErrEmptyCatalog
	}

	t := &Table{
		laps:  make(map[lapKey]int, len(laps)),
		stock: make(map[int][]int, len(stock)),
	}
	for _, r := range laps {
		t.laps[lapKey{dia: r.Dia, lapCase: r.LapCase}] = r.LengthMm
	}
	for _, s := range stock {
		lengths := append([]int(nil), s.StockLengths...)
		sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
		t.stock[s.Dia] = lengths
	}
	return t, nil
}

// LapLength returns the lap length for (dia, lapCase), falling back to
// 50 * dia when no explicit rule is configured.
func (t *Table) LapLength(dia int, lapCase model.LapCase) int {
	if length, ok := t.laps[lapKey{dia: dia, lapCase: lapCase}]; ok {
		return length
	}
	return fallbackLapMultiplier * dia
}

// StockLengths returns the descending stock length options for dia,
// falling back to a single 12000mm length when the diameter has no
// catalog entry.
func (t *Table) StockLengths(dia int) []int {
	if lengths, ok := t.stock[dia]; ok && len(lengths) > 0 {
		return lengths
	}
	return []int{fallbackStockLengthMm}
}

// MaxStock returns the largest stock length available for dia.
func (t *Table) MaxStock(dia int) int {
	lengths := t.StockLengths(dia)
	return lengths[0]
}

// Describe renders a short human-readable summary of a diameter's largest
// stock length ("dia 16: stock up to 12000mm").
func (t *Table) Describe(dia int) string {
	return fmt.Sprintf("dia %d: stock up to %dmm", dia, t.MaxStock(dia))
}
