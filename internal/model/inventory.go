package model

// InventoryBook is a saved, reusable set of offcut and lap-rule defaults a
// yard keeps across projects, distinct from the single-solve inventory list
// passed to a solve call.
type InventoryBook struct {
	Name          string                `json:"name"`
	OffcutPresets []OffcutInventoryItem `json:"offcut_presets"`
	RulePresets   []LapRule             `json:"rule_presets"`
}

// NewInventoryBook returns an empty, named inventory book.
func NewInventoryBook(name string) InventoryBook {
	return InventoryBook{
		Name:          name,
		OffcutPresets: []OffcutInventoryItem{},
		RulePresets:   []LapRule{},
	}
}

// DefaultInventoryBook returns a book populated with the lap lengths and
// yard offcuts a typical site starts a project with.
func DefaultInventoryBook() InventoryBook {
	return InventoryBook{
		Name: "Default Yard",
		OffcutPresets: []OffcutInventoryItem{
			NewOffcutInventoryItem(12, 3000, 20),
			NewOffcutInventoryItem(16, 2500, 15),
			NewOffcutInventoryItem(20, 2000, 10),
		},
		RulePresets: []LapRule{
			{Dia: 12, LapCase: LapCaseClassB, LengthMm: 600},
			{Dia: 16, LapCase: LapCaseClassB, LengthMm: 800},
			{Dia: 20, LapCase: LapCaseClassB, LengthMm: 1000},
			{Dia: 25, LapCase: LapCaseClassB, LengthMm: 1250},
		},
	}
}

// FindOffcutByID returns a pointer to the preset with the given ID, or nil.
func (b *InventoryBook) FindOffcutByID(id string) *OffcutInventoryItem {
	for i := range b.OffcutPresets {
		if b.OffcutPresets[i].ID == id {
			return &b.OffcutPresets[i]
		}
	}
	return nil
}

// FindRule returns a pointer to the rule for (dia, lapCase), or nil.
func (b *InventoryBook) FindRule(dia int, lapCase LapCase) *LapRule {
	for i := range b.RulePresets {
		if b.RulePresets[i].Dia == dia && b.RulePresets[i].LapCase == lapCase {
			return &b.RulePresets[i]
		}
	}
	return nil
}

// OffcutsForDia returns every preset offcut batch for the given diameter.
func (b *InventoryBook) OffcutsForDia(dia int) []OffcutInventoryItem {
	var out []OffcutInventoryItem
	for _, o := range b.OffcutPresets {
		if o.Dia == dia {
			out = append(out, o)
		}
	}
	return out
}

// Diameters returns the distinct diameters represented in the offcut presets.
func (b *InventoryBook) Diameters() []int {
	seen := map[int]bool{}
	var dias []int
	for _, o := range b.OffcutPresets {
		if !seen[o.Dia] {
			seen[o.Dia] = true
			dias = append(dias, o.Dia)
		}
	}
	return dias
}
