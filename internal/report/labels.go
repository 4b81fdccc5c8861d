package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rafiqul27/rebaropt/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// PieceLabel holds the data encoded into each spliced piece's QR code, so
// a site crew can scan a cut piece and recover its bar mark, run, and
// position along the run.
type PieceLabel struct {
	BarMark      string `json:"bar_mark"`
	RunID        string `json:"run_id"`
	SegmentIndex int    `json:"segment"`
	LengthMm     int    `json:"length_mm"`
	StartMm      int    `json:"start_mm"`
	EndMm        int    `json:"end_mm"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectPieceLabels flattens a splice plan into one PieceLabel per cut
// segment, in run/position order.
func CollectPieceLabels(plan []model.SplicePlanItem) []PieceLabel {
	var labels []PieceLabel
	for _, item := range plan {
		for i, piece := range item.Pieces {
			labels = append(labels, PieceLabel{
				BarMark:      item.BarMark,
				RunID:        item.RunID,
				SegmentIndex: i + 1,
				LengthMm:     piece.LengthMm,
				StartMm:      piece.StartMm,
				EndMm:        piece.EndMm,
			})
		}
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels, one per spliced piece,
// laid out on a standard label sheet format (Avery 5160 / 3 columns x 10
// rows on US Letter).
func ExportLabels(path string, plan []model.SplicePlanItem) error {
	labels := CollectPieceLabels(plan)
	if len(labels) == 0 {
		return fmt.Errorf("no spliced pieces to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q segment %d: %w", label.BarMark, label.SegmentIndex, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single piece label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info PieceLabel) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%s_%d", info.BarMark, info.RunID, info.SegmentIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	title := fmt.Sprintf("%s #%d", info.BarMark, info.SegmentIndex)
	if pdf.GetStringWidth(title) > textW {
		for len(title) > 0 && pdf.GetStringWidth(title+"...") > textW {
			title = title[:len(title)-1]
		}
		title += "..."
	}
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d mm", info.LengthMm), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pos := fmt.Sprintf("%d - %d mm", info.StartMm, info.EndMm)
	pdf.CellFormat(textW, 3, pos, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
