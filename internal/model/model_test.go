package model

import "testing"

func TestMemberTypeString(t *testing.T) {
	cases := map[MemberType]string{
		MemberColumn:     "Column",
		MemberBeamTop:    "BeamTop",
		MemberBeamBottom: "BeamBottom",
		MemberOther:      "Other",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("MemberType(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestOptimizationLevelIterations(t *testing.T) {
	cases := map[OptimizationLevel]int{
		LevelFast:     1,
		LevelBalanced: 50,
		LevelDeep:     200,
	}
	for l, want := range cases {
		if got := l.Iterations(); got != want {
			t.Errorf("%s.Iterations() = %d, want %d", l, got, want)
		}
	}
}

func TestOptimizationLevelIterationsUnknownFallsBackToOne(t *testing.T) {
	if got := OptimizationLevel("BOGUS").Iterations(); got != 1 {
		t.Errorf("expected fallback of 1 iteration, got %d", got)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.RoundingStepMm <= 0 {
		t.Error("expected positive rounding step")
	}
	if s.OptimizationLevel != LevelBalanced {
		t.Errorf("expected BALANCED default, got %s", s.OptimizationLevel)
	}
	if s.InventoryStrategy != StrategySequential {
		t.Errorf("expected SEQUENTIAL default, got %s", s.InventoryStrategy)
	}
	if s.Parallel {
		t.Error("expected Parallel to default to false")
	}
	if !s.AllowOffcuts {
		t.Error("expected AllowOffcuts to default to true")
	}
}

func TestSpliceZoneWidth(t *testing.T) {
	z := SpliceZone{StartMm: 1000, EndMm: 1600}
	if z.Width() != 600 {
		t.Errorf("expected width 600, got %d", z.Width())
	}
}

func TestSpliceZoneContains(t *testing.T) {
	z := SpliceZone{StartMm: 1000, EndMm: 1600}
	if !z.Contains(1000) {
		t.Error("expected zone to contain its start (inclusive)")
	}
	if z.Contains(1600) {
		t.Error("expected zone to exclude its end (half-open)")
	}
	if !z.Contains(1300) {
		t.Error("expected zone to contain a midpoint")
	}
	if z.Contains(999) || z.Contains(1601) {
		t.Error("expected zone to exclude points outside its range")
	}
}

func TestNewBarRunDefaultsToClassB(t *testing.T) {
	run := NewBarRun("B1", MemberColumn, 16, 4, 8000, nil)
	if run.LapCase != LapCaseClassB {
		t.Errorf("expected Class B lap case, got %s", run.LapCase)
	}
	if run.ID == "" {
		t.Error("expected generated ID")
	}
	if run.BarMark != "B1" {
		t.Errorf("expected bar mark B1, got %s", run.BarMark)
	}
}

func TestNewOffcutInventoryItem(t *testing.T) {
	item := NewOffcutInventoryItem(20, 2500, 8)
	if item.ID == "" {
		t.Error("expected generated ID")
	}
	if item.Dia != 20 || item.LengthMm != 2500 || item.Quantity != 8 {
		t.Errorf("unexpected item fields: %+v", item)
	}
}

func TestNewDirectPiece(t *testing.T) {
	piece := NewDirectPiece(10, 400, 120)
	if piece.ID == "" {
		t.Error("expected generated ID")
	}
	if piece.Dia != 10 || piece.LengthMm != 400 || piece.Qty != 120 {
		t.Errorf("unexpected piece fields: %+v", piece)
	}
}

func TestNewProject(t *testing.T) {
	p := NewProject("Tower A")
	if p.Name != "Tower A" {
		t.Errorf("expected name 'Tower A', got %q", p.Name)
	}
	if p.Settings.OptimizationLevel != LevelBalanced {
		t.Error("expected new project to carry default settings")
	}
	if p.Result != nil {
		t.Error("expected new project to have no result")
	}
}

func TestDifferentBarRunsGetDifferentIDs(t *testing.T) {
	a := NewBarRun("A", MemberColumn, 16, 1, 1000, nil)
	b := NewBarRun("B", MemberColumn, 16, 1, 1000, nil)
	if a.ID == b.ID {
		t.Error("expected distinct generated IDs for distinct runs")
	}
}
