// Package project persists and loads the §6 project file schema (Settings,
// Stock, Inventory, Rules, BarRuns, FixedPieces) as JSON or as an .xlsx
// workbook, one sheet per table. This package never parses the geometry
// column into zones; that remains the external collaborator's job per §6.
// The JSON form stores BarRun.TotalLengthMm and .AllowedZones as written;
// the .xlsx form carries only the raw geometry string, so both are left
// unset after an .xlsx load.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rafiqul27/rebaropt/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSettings    = "Settings"
	sheetStock       = "Stock"
	sheetInventory   = "Inventory"
	sheetRules       = "Rules"
	sheetBarRuns     = "BarRuns"
	sheetFixedPieces = "FixedPieces"
)

// SaveProjectJSON writes a Project to path as JSON.
func SaveProjectJSON(path string, p model.Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("project: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProjectJSON reads a Project from a JSON file at path.
func LoadProjectJSON(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("project: read %s: %w", path, err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("project: unmarshal %s: %w", path, err)
	}
	return p, nil
}

// SaveProjectXLSX writes a Project to path as an .xlsx workbook with one
// sheet per §6 table.
func SaveProjectXLSX(path string, p model.Project) error {
	f := excelize.NewFile()
	defer f.Close()

	writeSettingsSheet(f, p)
	writeStockSheet(f, p.Stock)
	writeInventorySheet(f, p.Inventory)
	writeRulesSheet(f, p.Rules)
	writeBarRunsSheet(f, p.BarRuns)
	writeFixedPiecesSheet(f, p.FixedPieces)

	f.DeleteSheet("Sheet1")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("project: save xlsx %s: %w", path, err)
	}
	return nil
}

// LoadProjectXLSX reads a Project from an .xlsx workbook at path, in the
// §6 schema's sheet layout.
func LoadProjectXLSX(path string) (model.Project, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("project: open xlsx %s: %w", path, err)
	}
	defer f.Close()

	p := model.NewProject("")
	if err := readSettingsSheet(f, &p); err != nil {
		return model.Project{}, err
	}
	if p.Stock, err = readStockSheet(f); err != nil {
		return model.Project{}, err
	}
	if p.Inventory, err = readInventorySheet(f); err != nil {
		return model.Project{}, err
	}
	if p.Rules, err = readRulesSheet(f); err != nil {
		return model.Project{}, err
	}
	if p.BarRuns, err = readBarRunsSheet(f); err != nil {
		return model.Project{}, err
	}
	if p.FixedPieces, err = readFixedPiecesSheet(f); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

func writeSettingsSheet(f *excelize.File, p model.Project) {
	f.NewSheet(sheetSettings)
	header := []string{"projectName", "units", "roundingStepMm", "kerfMm", "minLeftoverMm", "allowOffcuts", "beamDepthMm", "optimizationLevel", "inventoryStrategy"}
	setRow(f, sheetSettings, 1, toAny(header))
	row := []any{
		p.Name, "mm",
		p.Settings.RoundingStepMm, p.Settings.KerfMm, p.Settings.MinLeftoverMm,
		p.Settings.AllowOffcuts, p.Settings.BeamDepthMm,
		string(p.Settings.OptimizationLevel), string(p.Settings.InventoryStrategy),
	}
	setRow(f, sheetSettings, 2, row)
}

func readSettingsSheet(f *excelize.File, p *model.Project) error {
	rows, err := f.GetRows(sheetSettings)
	if err != nil {
		return fmt.Errorf("project: %s sheet: %w", sheetSettings, err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("project: %s sheet has no data row", sheetSettings)
	}
	row := rows[1]
	p.Name = cell(row, 0)
	p.Settings.RoundingStepMm = atoiOr(cell(row, 2), p.Settings.RoundingStepMm)
	p.Settings.KerfMm = atoiOr(cell(row, 3), p.Settings.KerfMm)
	p.Settings.MinLeftoverMm = atoiOr(cell(row, 4), p.Settings.MinLeftoverMm)
	p.Settings.AllowOffcuts = cell(row, 5) == "true" || cell(row, 5) == "TRUE" || cell(row, 5) == "1"
	p.Settings.BeamDepthMm = atoiOr(cell(row, 6), p.Settings.BeamDepthMm)
	if v := cell(row, 7); v != "" {
		p.Settings.OptimizationLevel = model.OptimizationLevel(v)
	}
	if v := cell(row, 8); v != "" {
		p.Settings.InventoryStrategy = model.InventoryStrategy(v)
	}
	return nil
}

func writeStockSheet(f *excelize.File, stock []model.StockCatalogItem) {
	f.NewSheet(sheetStock)
	setRow(f, sheetStock, 1, toAny([]string{"dia", "lengths"}))
	for i, s := range stock {
		lengths := make([]string, len(s.StockLengths))
		for j, l := range s.StockLengths {
			lengths[j] = strconv.Itoa(l)
		}
		setRow(f, sheetStock, i+2, []any{s.Dia, strings.Join(lengths, ",")})
	}
}

func readStockSheet(f *excelize.File) ([]model.StockCatalogItem, error) {
	rows, err := f.GetRows(sheetStock)
	if err != nil {
		return nil, fmt.Errorf("project: %s sheet: %w", sheetStock, err)
	}
	var out []model.StockCatalogItem
	for _, row := range rows[headerSkip(rows):] {
		if isBlankRow(row) {
			continue
		}
		dia := atoiOr(cell(row, 0), 0)
		var lengths []int
		for _, part := range strings.Split(cell(row, 1), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			lengths = append(lengths, atoiOr(part, 0))
		}
		out = append(out, model.StockCatalogItem{Dia: dia, StockLengths: lengths})
	}
	return out, nil
}

func writeInventorySheet(f *excelize.File, inv []model.OffcutInventoryItem) {
	f.NewSheet(sheetInventory)
	setRow(f, sheetInventory, 1, toAny([]string{"id", "dia", "lengthMm", "quantity"}))
	for i, item := range inv {
		setRow(f, sheetInventory, i+2, []any{item.ID, item.Dia, item.LengthMm, item.Quantity})
	}
}

func readInventorySheet(f *excelize.File) ([]model.OffcutInventoryItem, error) {
	rows, err := f.GetRows(sheetInventory)
	if err != nil {
		return nil, fmt.Errorf("project: %s sheet: %w", sheetInventory, err)
	}
	var out []model.OffcutInventoryItem
	for _, row := range rows[headerSkip(rows):] {
		if isBlankRow(row) {
			continue
		}
		out = append(out, model.OffcutInventoryItem{
			ID:       cell(row, 0),
			Dia:      atoiOr(cell(row, 1), 0),
			LengthMm: atoiOr(cell(row, 2), 0),
			Quantity: atoiOr(cell(row, 3), 0),
		})
	}
	return out, nil
}

func writeRulesSheet(f *excelize.File, rules []model.LapRule) {
	f.NewSheet(sheetRules)
	setRow(f, sheetRules, 1, toAny([]string{"dia", "lapCase", "lengthMm"}))
	for i, r := range rules {
		setRow(f, sheetRules, i+2, []any{r.Dia, string(r.LapCase), r.LengthMm})
	}
}

func readRulesSheet(f *excelize.File) ([]model.LapRule, error) {
	rows, err := f.GetRows(sheetRules)
	if err != nil {
		return nil, fmt.Errorf("project: %s sheet: %w", sheetRules, err)
	}
	var out []model.LapRule
	for _, row := range rows[headerSkip(rows):] {
		if isBlankRow(row) {
			continue
		}
		out = append(out, model.LapRule{
			Dia:      atoiOr(cell(row, 0), 0),
			LapCase:  model.LapCase(cell(row, 1)),
			LengthMm: atoiOr(cell(row, 2), 0),
		})
	}
	return out, nil
}

func writeBarRunsSheet(f *excelize.File, runs []model.BarRun) {
	f.NewSheet(sheetBarRuns)
	setRow(f, sheetBarRuns, 1, toAny([]string{"id", "barMark", "memberType", "dia", "qty", "geometry"}))
	for i, r := range runs {
		setRow(f, sheetBarRuns, i+2, []any{r.ID, r.BarMark, r.MemberType.String(), r.Dia, r.QtyParallel, r.Geometry})
	}
}

func readBarRunsSheet(f *excelize.File) ([]model.BarRun, error) {
	rows, err := f.GetRows(sheetBarRuns)
	if err != nil {
		return nil, fmt.Errorf("project: %s sheet: %w", sheetBarRuns, err)
	}
	var out []model.BarRun
	for _, row := range rows[headerSkip(rows):] {
		if isBlankRow(row) {
			continue
		}
		out = append(out, model.BarRun{
			ID:          cell(row, 0),
			BarMark:     cell(row, 1),
			MemberType:  model.ParseMemberType(cell(row, 2)),
			LapCase:     model.LapCaseClassB,
			Dia:         atoiOr(cell(row, 3), 0),
			QtyParallel: atoiOr(cell(row, 4), 1),
			Geometry:    cell(row, 5),
		})
	}
	return out, nil
}

func writeFixedPiecesSheet(f *excelize.File, pieces []model.DirectPiece) {
	f.NewSheet(sheetFixedPieces)
	setRow(f, sheetFixedPieces, 1, toAny([]string{"id", "barMark", "dia", "lengthMm", "qty"}))
	for i, p := range pieces {
		setRow(f, sheetFixedPieces, i+2, []any{p.ID, p.BarMark, p.Dia, p.LengthMm, p.Qty})
	}
}

func readFixedPiecesSheet(f *excelize.File) ([]model.DirectPiece, error) {
	rows, err := f.GetRows(sheetFixedPieces)
	if err != nil {
		return nil, fmt.Errorf("project: %s sheet: %w", sheetFixedPieces, err)
	}
	var out []model.DirectPiece
	for _, row := range rows[headerSkip(rows):] {
		if isBlankRow(row) {
			continue
		}
		out = append(out, model.DirectPiece{
			ID:       cell(row, 0),
			BarMark:  cell(row, 1),
			Dia:      atoiOr(cell(row, 2), 0),
			LengthMm: atoiOr(cell(row, 3), 0),
			Qty:      atoiOr(cell(row, 4), 0),
		})
	}
	return out, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) {
	cellRef, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetSheetRow(sheet, cellRef, &values)
}

func toAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

func headerSkip(rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	return 1
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
