// Package model holds the plain data types shared across the rebar
// optimization pipeline: runs, stock, inventory, rules, and the plans
// the solver produces from them.
package model

import "github.com/google/uuid"

// MemberType classifies the structural element a bar run belongs to,
// which in turn drives which allowed-zone policy applies (§6).
type MemberType int

const (
	MemberColumn MemberType = iota
	MemberBeamTop
	MemberBeamBottom
	MemberOther
)

func (m MemberType) String() string {
	switch m {
	case MemberColumn:
		return "Column"
	case MemberBeamTop:
		return "BeamTop"
	case MemberBeamBottom:
		return "BeamBottom"
	default:
		return "Other"
	}
}

// ParseMemberType maps a project-file string back to a MemberType. Unknown
// values map to MemberOther rather than failing, matching a schema loader's
// tolerance for fields an older project file may not carry.
func ParseMemberType(s string) MemberType {
	switch s {
	case "Column":
		return MemberColumn
	case "BeamTop":
		return MemberBeamTop
	case "BeamBottom":
		return MemberBeamBottom
	default:
		return MemberOther
	}
}

// LapCase identifies a row in the lap-length rule table. Class B (100%
// stagger) is the only case this core plans for; the field exists so the
// rule table can carry other code cases without the planner caring.
type LapCase string

const (
	LapCaseClassB LapCase = "CLASS_B"
)

// OptimizationLevel controls the Monte Carlo iteration budget (§4.5).
type OptimizationLevel string

const (
	LevelFast     OptimizationLevel = "FAST"
	LevelBalanced OptimizationLevel = "BALANCED"
	LevelDeep     OptimizationLevel = "DEEP"
)

// Iterations returns the Monte Carlo iteration budget for this level.
func (l OptimizationLevel) Iterations() int {
	switch l {
	case LevelBalanced:
		return 50
	case LevelDeep:
		return 200
	default:
		return 1
	}
}

// InventoryStrategy selects how offcut inventory is folded into the
// packing pass (§4.6).
type InventoryStrategy string

const (
	StrategySequential InventoryStrategy = "SEQUENTIAL"
	StrategyMixed      InventoryStrategy = "MIXED"
)

// SourceType distinguishes a cutting-plan bin's supply origin.
type SourceType string

const (
	SourceNewStock          SourceType = "NEW_STOCK"
	SourceExistingInventory SourceType = "EXISTING_INVENTORY"
)

// ProjectSettings holds the batch-wide tunables for one solve() call.
type ProjectSettings struct {
	RoundingStepMm    int               `json:"rounding_step_mm"`
	KerfMm            int               `json:"kerf_mm"`
	MinLeftoverMm     int               `json:"min_leftover_mm"`
	BeamDepthMm       int               `json:"beam_depth_mm"`
	OptimizationLevel OptimizationLevel `json:"optimization_level"`
	InventoryStrategy InventoryStrategy `json:"inventory_strategy"`
	AllowOffcuts      bool              `json:"allow_offcuts"`
	// Parallel enables farming independent per-diameter Monte Carlo
	// sub-solves out to a worker pool (§5). Off by default.
	Parallel bool  `json:"parallel"`
	Seed     int64 `json:"seed"`
}

// DefaultSettings returns a ProjectSettings with conservative, commonly
// used site defaults.
func DefaultSettings() ProjectSettings {
	return ProjectSettings{
		RoundingStepMm:    10,
		KerfMm:            5,
		MinLeftoverMm:     500,
		BeamDepthMm:       450,
		OptimizationLevel: LevelBalanced,
		InventoryStrategy: StrategySequential,
		AllowOffcuts:      true,
		Parallel:          false,
		Seed:              1,
	}
}

// StockCatalogItem is the ordered set of purchasable stock lengths for
// one diameter, descending.
type StockCatalogItem struct {
	Dia          int   `json:"dia"`
	StockLengths []int `json:"stock_lengths"`
}

// OffcutInventoryItem is a finite, consumable batch of identical-length
// yard offcuts for one diameter.
type OffcutInventoryItem struct {
	ID       string `json:"id"`
	Dia      int    `json:"dia"`
	LengthMm int    `json:"length_mm"`
	Quantity int    `json:"quantity"`
}

// NewOffcutInventoryItem creates an inventory item with a generated ID.
func NewOffcutInventoryItem(dia, lengthMm, quantity int) OffcutInventoryItem {
	return OffcutInventoryItem{
		ID:       uuid.New().String()[:8],
		Dia:      dia,
		LengthMm: lengthMm,
		Quantity: quantity,
	}
}

// LapRule is one (dia, lapCase) -> lapLength entry.
type LapRule struct {
	Dia      int     `json:"dia"`
	LapCase  LapCase `json:"lap_case"`
	LengthMm int     `json:"length_mm"`
}

// SpliceZone is a half-open interval, in mm, along a run's axis where a
// splice center is structurally permitted to fall.
type SpliceZone struct {
	StartMm int `json:"start_mm"`
	EndMm   int `json:"end_mm"`
}

// Width returns the zone's length in mm.
func (z SpliceZone) Width() int {
	return z.EndMm - z.StartMm
}

// Contains reports whether pos falls within [StartMm, EndMm).
func (z SpliceZone) Contains(pos int) bool {
	return pos >= z.StartMm && pos < z.EndMm
}

// BarRun is one continuous reinforcement line that must be assembled
// from spliced stock pieces.
type BarRun struct {
	ID            string       `json:"id"`
	BarMark       string       `json:"bar_mark"`
	MemberType    MemberType   `json:"member_type"`
	LapCase       LapCase      `json:"lap_case"`
	Dia           int          `json:"dia"`
	QtyParallel   int          `json:"qty_parallel"`
	TotalLengthMm int          `json:"total_length_mm"`
	AllowedZones  []SpliceZone `json:"allowed_zones"`
	// Geometry is the raw comma-separated segment-length string a project
	// file's BarRuns sheet carries (§6). The core never parses it; it is
	// kept alongside TotalLengthMm/AllowedZones so a caller that re-runs
	// the external geometry-to-zone collaborator can write those derived
	// fields back without losing the source geometry.
	Geometry string `json:"geometry,omitempty"`
}

// NewBarRun creates a BarRun with a generated ID and Class B lap case.
func NewBarRun(barMark string, memberType MemberType, dia, qtyParallel, totalLengthMm int, zones []SpliceZone) BarRun {
	return BarRun{
		ID:            uuid.New().String()[:8],
		BarMark:       barMark,
		MemberType:    memberType,
		LapCase:       LapCaseClassB,
		Dia:           dia,
		QtyParallel:   qtyParallel,
		TotalLengthMm: totalLengthMm,
		AllowedZones:  zones,
	}
}

// DirectPiece is an already-detailed fixed-length piece with no splicing
// required (e.g. stirrups, short ties).
type DirectPiece struct {
	ID       string `json:"id"`
	BarMark  string `json:"bar_mark,omitempty"`
	Dia      int    `json:"dia"`
	LengthMm int    `json:"length_mm"`
	Qty      int    `json:"qty"`
}

// NewDirectPiece creates a DirectPiece with a generated ID.
func NewDirectPiece(dia, lengthMm, qty int) DirectPiece {
	return DirectPiece{
		ID:       uuid.New().String()[:8],
		Dia:      dia,
		LengthMm: lengthMm,
		Qty:      qty,
	}
}

// SplicePiece is one cut segment of a spliced run.
type SplicePiece struct {
	LengthMm int `json:"length_mm"`
	StartMm  int `json:"start_mm"`
	EndMm    int `json:"end_mm"`
}

// SplicePlanItem is the splice plan produced for one BarRun.
type SplicePlanItem struct {
	RunID   string        `json:"run_id"`
	BarMark string        `json:"bar_mark"`
	GroupID int           `json:"group_id"`
	Pieces  []SplicePiece `json:"pieces"`
}

// CuttingPlanItem is one display pattern: a stock length cut the same
// way, repeated Count times.
type CuttingPlanItem struct {
	Dia         int        `json:"dia"`
	SourceType  SourceType `json:"source_type"`
	StockLength int        `json:"stock_length"`
	Pattern     []int      `json:"pattern"` // sorted cut lengths
	Count       int        `json:"count"`
	WasteMm     int        `json:"waste_mm"`
	OffcutMm    int        `json:"offcut_mm"`
}

// ProcurementItem is the quantity of new stock to buy for one (dia, stockLength).
type ProcurementItem struct {
	Dia         int `json:"dia"`
	StockLength int `json:"stock_length"`
	Quantity    int `json:"quantity"`
	TotalLength int `json:"total_length"`
}

// Summary holds the aggregate metrics over a full solve.
type Summary struct {
	TotalInputLength int     `json:"total_input_length_mm"`
	TotalPartsLength int     `json:"total_parts_length_mm"`
	TotalWaste       int     `json:"total_waste_mm"`
	WastePercent     float64 `json:"waste_percent"`
	TotalWeightKg    float64 `json:"total_weight_kg"`
	TotalStockBars   int     `json:"total_stock_bars"`
}

// OptimizationResult is the full output of a solve() call.
type OptimizationResult struct {
	SplicePlan  []SplicePlanItem  `json:"splice_plan"`
	CuttingPlan []CuttingPlanItem `json:"cutting_plan"`
	Procurement []ProcurementItem `json:"procurement"`
	Summary     Summary           `json:"summary"`
	Warnings    []string          `json:"warnings"`
}

// Project ties every input collection together for save/load (§6).
type Project struct {
	Name        string                `json:"name"`
	Settings    ProjectSettings       `json:"settings"`
	Stock       []StockCatalogItem    `json:"stock"`
	Inventory   []OffcutInventoryItem `json:"inventory"`
	Rules       []LapRule             `json:"rules"`
	BarRuns     []BarRun              `json:"bar_runs"`
	FixedPieces []DirectPiece         `json:"fixed_pieces"`
	Result      *OptimizationResult   `json:"result,omitempty"`
}

// NewProject returns an empty project with default settings.
func NewProject(name string) Project {
	return Project{
		Name:     name,
		Settings: DefaultSettings(),
	}
}
