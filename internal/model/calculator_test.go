package model

import "testing"

func TestBarWeightKgPerMeter(t *testing.T) {
	// 16mm bar: 16^2/162 = 1.580 kg/m (approx)
	w := BarWeightKgPerMeter(16)
	if w < 1.5 || w > 1.65 {
		t.Errorf("expected ~1.58 kg/m for 16mm bar, got %f", w)
	}
}

func TestBarWeightKg(t *testing.T) {
	w := BarWeightKg(16, 12000)
	expected := BarWeightKgPerMeter(16) * 12.0
	if w != expected {
		t.Errorf("expected %f, got %f", expected, w)
	}
}

func TestEstimateProcurementCost(t *testing.T) {
	items := []ProcurementItem{
		{Dia: 16, StockLength: 12000, Quantity: 10, TotalLength: 120000},
		{Dia: 20, StockLength: 12000, Quantity: 5, TotalLength: 60000},
	}
	prices := map[int]float64{16: 0.80, 20: 0.85}

	est := EstimateProcurementCost(items, prices)

	if len(est.ByDia) != 2 {
		t.Fatalf("expected 2 diameter lines, got %d", len(est.ByDia))
	}
	if est.TotalWeightKg <= 0 {
		t.Error("expected positive total weight")
	}
	if est.TotalCost <= 0 {
		t.Error("expected positive total cost")
	}

	var line16 *DiaCostLine
	for i := range est.ByDia {
		if est.ByDia[i].Dia == 16 {
			line16 = &est.ByDia[i]
		}
	}
	if line16 == nil {
		t.Fatal("expected a line for dia 16")
	}
	if line16.TotalBars != 10 {
		t.Errorf("expected 10 bars, got %d", line16.TotalBars)
	}
}

func TestEstimateProcurementCostMissingPrice(t *testing.T) {
	items := []ProcurementItem{
		{Dia: 25, StockLength: 12000, Quantity: 1, TotalLength: 12000},
	}
	est := EstimateProcurementCost(items, map[int]float64{})
	if est.TotalCost != 0 {
		t.Errorf("expected 0 cost when no price given, got %f", est.TotalCost)
	}
	if est.TotalWeightKg <= 0 {
		t.Error("expected positive weight even without a price")
	}
}
