package rules

import (
	"testing"

	"github.com/rafiqul27/rebaropt/internal/model"
)

func TestLapLengthExplicitRule(t *testing.T) {
	tbl, err := NewTable(
		[]model.LapRule{{Dia: 16, LapCase: model.LapCaseClassB, LengthMm: 800}},
		[]model.StockCatalogItem{{Dia: 16, StockLengths: []int{12000}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tbl.LapLength(16, model.LapCaseClassB); got != 800 {
		t.Errorf("expected 800, got %d", got)
	}
}

func TestLapLengthFallback(t *testing.T) {
	tbl, err := NewTable(nil, []model.StockCatalogItem{{Dia: 20, StockLengths: []int{12000}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tbl.LapLength(20, model.LapCaseClassB); got != 50*20 {
		t.Errorf("expected fallback 1000, got %d", got)
	}
}

func TestStockLengthsDescendingOrder(t *testing.T) {
	tbl, err := NewTable(nil, []model.StockCatalogItem{{Dia: 16, StockLengths: []int{6000, 12000, 9000}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := tbl.StockLengths(16)
	want := []int{12000, 9000, 6000}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected descending %v, got %v", want, got)
		}
	}
}

func TestStockLengthsFallback(t *testing.T) {
	tbl, err := NewTable(nil, []model.StockCatalogItem{{Dia: 16, StockLengths: []int{12000}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := tbl.StockLengths(99)
	if len(got) != 1 || got[0] != 12000 {
		t.Errorf("expected fallback [12000], got %v", got)
	}
}

func TestMaxStock(t *testing.T) {
	tbl, err := NewTable(nil, []model.StockCatalogItem{{Dia: 16, StockLengths: []int{6000, 12000}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tbl.MaxStock(16); got != 12000 {
		t.Errorf("expected 12000, got %d", got)
	}
}

func TestNewTableEmptyCatalog(t *testing.T) {
	_, err := NewTable(nil, nil)
	if err != ErrEmptyCatalog {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}
