package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rafiqul27/rebaropt/internal/model"
)

func sampleResult() model.OptimizationResult {
	return model.OptimizationResult{
		SplicePlan: []model.SplicePlanItem{
			{
				RunID: "run-1", BarMark: "C1", GroupID: 1,
				Pieces: []model.SplicePiece{
					{LengthMm: 9000, StartMm: 0, EndMm: 9000},
					{LengthMm: 9000, StartMm: 9000, EndMm: 18000},
				},
			},
		},
		CuttingPlan: []model.CuttingPlanItem{
			{Dia: 20, SourceType: model.SourceNewStock, StockLength: 12000, Pattern: []int{9000}, Count: 2, WasteMm: 3000, OffcutMm: 0},
		},
		Procurement: []model.ProcurementItem{
			{Dia: 20, StockLength: 12000, Quantity: 2, TotalLength: 24000},
		},
		Summary: model.Summary{
			TotalInputLength: 24000,
			TotalPartsLength: 18000,
			TotalWaste:       6000,
			WastePercent:     25.0,
			TotalWeightKg:    74.5,
			TotalStockBars:   2,
		},
		Warnings: []string{"bar C1 has a splice zone not satisfied at 4500mm"},
	}
}

func TestExportPDFCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	if err := ExportPDF(path, sampleResult(), "Tower A"); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PDF output")
	}
}

func TestExportPDFWithoutWarnings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.pdf")

	result := sampleResult()
	result.Warnings = nil

	if err := ExportPDF(path, result, "Tower B"); err != nil {
		t.Fatalf("ExportPDF failed with no warnings: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
}

func TestExportPDFEmptyTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	result := model.OptimizationResult{}
	if err := ExportPDF(path, result, "Empty Project"); err != nil {
		t.Fatalf("ExportPDF failed on empty result: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
}
