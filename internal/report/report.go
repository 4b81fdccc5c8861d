// Package report renders the §6 read-only report tables (Summary,
// Procurement table, Cutting plan table, Install schedule) from a solver
// result. It is a pure consumer of model.OptimizationResult: nothing in
// internal/solver imports it, and it never feeds back into the core
// algorithms. These are tabular reports for site crews, not visual cut
// diagrams.
package report

import (
	"fmt"
	"sort"

	"github.com/rafiqul27/rebaropt/internal/model"
)

// SummaryReport is the top-of-report statistics block: total steel in
// tons, total waste in meters, waste percent, and stock bar count.
type SummaryReport struct {
	TotalSteelTons float64
	TotalWasteM    float64
	WastePercent   float64
	TotalStockBars int
}

// BuildSummaryReport converts the solver's millimeter/kilogram Summary into
// the report-friendly units (tons, meters) site paperwork uses.
func BuildSummaryReport(s model.Summary) SummaryReport {
	return SummaryReport{
		TotalSteelTons: round2(s.TotalWeightKg / 1000),
		TotalWasteM:    round2(float64(s.TotalWaste) / 1000),
		WastePercent:   s.WastePercent,
		TotalStockBars: s.TotalStockBars,
	}
}

// InstallScheduleRow is one piece a site crew installs: its bar mark,
// its 1-based segment index within its run (numbered in ascending start
// position), its cut length, and its absolute start/end position along
// the run.
type InstallScheduleRow struct {
	BarMark      string
	RunID        string
	SegmentIndex int
	CutLengthMm  int
	StartMm      int
	EndMm        int
}

// BuildInstallSchedule flattens every run's splice plan into an ordered
// per-bar-mark install schedule, sorted by bar mark then by position.
func BuildInstallSchedule(plan []model.SplicePlanItem) []InstallScheduleRow {
	var rows []InstallScheduleRow
	for _, item := range plan {
		for _, piece := range item.Pieces {
			rows = append(rows, InstallScheduleRow{
				BarMark:     item.BarMark,
				RunID:       item.RunID,
				CutLengthMm: piece.LengthMm,
				StartMm:     piece.StartMm,
				EndMm:       piece.EndMm,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BarMark != rows[j].BarMark {
			return rows[i].BarMark < rows[j].BarMark
		}
		return rows[i].StartMm < rows[j].StartMm
	})
	segmentsSeen := map[string]int{}
	for i := range rows {
		segmentsSeen[rows[i].RunID]++
		rows[i].SegmentIndex = segmentsSeen[rows[i].RunID]
	}
	return rows
}

// ProcurementTable sorts the solver's procurement items into deterministic
// (dia, stockLength) order for display.
func ProcurementTable(items []model.ProcurementItem) []model.ProcurementItem {
	out := make([]model.ProcurementItem, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dia != out[j].Dia {
			return out[i].Dia < out[j].Dia
		}
		return out[i].StockLength > out[j].StockLength
	})
	return out
}

// CuttingPlanTable sorts the solver's cutting plan items into deterministic
// (dia, source, stockLength) order for display.
func CuttingPlanTable(items []model.CuttingPlanItem) []model.CuttingPlanItem {
	out := make([]model.CuttingPlanItem, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Dia != b.Dia {
			return a.Dia < b.Dia
		}
		if a.SourceType != b.SourceType {
			return a.SourceType < b.SourceType
		}
		return a.StockLength > b.StockLength
	})
	return out
}

// PatternString renders a cutting plan item's sorted cut list as a
// human-readable "a + b + c" pattern for report tables.
func PatternString(pattern []int) string {
	s := ""
	for i, v := range pattern {
		if i > 0 {
			s += " + "
		}
		s += fmt.Sprintf("%d", v)
	}
	return s
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
