package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rafiqul27/rebaropt/internal/model"
)

// Page layout constants (A4 portrait in mm) — a tabular report, not a
// visual cut-layout diagram (§1 excludes those from the core).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
)

// ExportPDF renders the §6 report tables (Summary, Procurement, Cutting
// Plan, Install Schedule) as a multi-page PDF document.
func ExportPDF(path string, result model.OptimizationResult, projectName string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderSummaryPage(pdf, result, projectName)

	pdf.AddPage()
	renderProcurementPage(pdf, result.Procurement)

	pdf.AddPage()
	renderCuttingPlanPage(pdf, result.CuttingPlan)

	pdf.AddPage()
	renderInstallSchedulePage(pdf, result.SplicePlan)

	return pdf.OutputFileAndClose(path)
}

func pageTitle(pdf *fpdf.Fpdf, title string) float64 {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title, "", 0, "L", false, 0, "")
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)
	return marginTop + 18
}

func tableHeader(pdf *fpdf.Fpdf, y float64, widths []float64, headers []string) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
		x += widths[i]
	}
	return y + 6
}

func tableRow(pdf *fpdf.Fpdf, y float64, widths []float64, cells []string, alt bool) float64 {
	if alt {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	pdf.SetFont("Helvetica", "", 9)
	x := marginLeft
	for i, c := range cells {
		pdf.SetXY(x, y)
		pdf.CellFormat(widths[i], 6, c, "1", 0, "C", true, 0, "")
		x += widths[i]
	}
	return y + 6
}

func renderSummaryPage(pdf *fpdf.Fpdf, result model.OptimizationResult, projectName string) {
	y := pageTitle(pdf, "Material Optimization Summary: "+projectName)
	s := BuildSummaryReport(result.Summary)

	items := []struct{ label, value string }{
		{"Total Steel", fmt.Sprintf("%.2f t", s.TotalSteelTons)},
		{"Total Waste", fmt.Sprintf("%.2f m", s.TotalWasteM)},
		{"Waste Percent", fmt.Sprintf("%.2f%%", s.WastePercent)},
		{"Total Stock Bars", fmt.Sprintf("%d", s.TotalStockBars)},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 7, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 7, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		y += 8
	}

	if len(result.Warnings) > 0 {
		y += 6
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 7, "Structural Warnings", "", 0, "L", false, 0, "")
		y += 8
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range result.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.MultiCell(pageWidth-marginLeft-marginRight-5, 5, w, "", "L", false)
			y = pdf.GetY() + 2
		}
	}
}

func renderProcurementPage(pdf *fpdf.Fpdf, items []model.ProcurementItem) {
	y := pageTitle(pdf, "Procurement List")
	widths := []float64{40, 45, 35, 55}
	y = tableHeader(pdf, y, widths, []string{"Dia (mm)", "Stock Length (mm)", "Quantity", "Total Length (mm)"})
	for i, it := range ProcurementTable(items) {
		cells := []string{
			fmt.Sprintf("%d", it.Dia),
			fmt.Sprintf("%d", it.StockLength),
			fmt.Sprintf("%d", it.Quantity),
			fmt.Sprintf("%d", it.TotalLength),
		}
		y = tableRow(pdf, y, widths, cells, i%2 == 0)
	}
}

func renderCuttingPlanPage(pdf *fpdf.Fpdf, items []model.CuttingPlanItem) {
	y := pageTitle(pdf, "Cutting Plan")
	widths := []float64{18, 28, 28, 24, 55, 25, 25}
	y = tableHeader(pdf, y, widths, []string{"Dia", "Source", "Stock (mm)", "Count", "Pattern (mm)", "Offcut", "Waste"})
	for i, it := range CuttingPlanTable(items) {
		cells := []string{
			fmt.Sprintf("%d", it.Dia),
			sourceLabel(it.SourceType),
			fmt.Sprintf("%d", it.StockLength),
			fmt.Sprintf("%d", it.Count),
			PatternString(it.Pattern),
			fmt.Sprintf("%d", it.OffcutMm),
			fmt.Sprintf("%d", it.WasteMm),
		}
		y = tableRow(pdf, y, widths, cells, i%2 == 0)
	}
}

func renderInstallSchedulePage(pdf *fpdf.Fpdf, plan []model.SplicePlanItem) {
	y := pageTitle(pdf, "Install Schedule")
	widths := []float64{35, 22, 30, 30, 30}
	y = tableHeader(pdf, y, widths, []string{"Bar Mark", "Segment", "Length (mm)", "Start (mm)", "End (mm)"})
	for i, row := range BuildInstallSchedule(plan) {
		cells := []string{
			row.BarMark,
			fmt.Sprintf("%d", row.SegmentIndex),
			fmt.Sprintf("%d", row.CutLengthMm),
			fmt.Sprintf("%d", row.StartMm),
			fmt.Sprintf("%d", row.EndMm),
		}
		y = tableRow(pdf, y, widths, cells, i%2 == 0)
	}
}

func sourceLabel(s model.SourceType) string {
	if s == model.SourceExistingInventory {
		return "Inventory"
	}
	return "New Stock"
}
