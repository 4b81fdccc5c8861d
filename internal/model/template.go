package model

import (
	"time"

	"github.com/google/uuid"
)

// RunTemplate is a reusable bundle of bar runs, direct pieces, and settings
// that can be saved and recalled across projects, without carrying a result.
type RunTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	BarRuns     []BarRun      `json:"bar_runs"`
	FixedPieces []DirectPiece `json:"fixed_pieces"`
	Settings    ProjectSettings `json:"settings"`
}

// NewRunTemplate creates a new template from the given project data. Runs
// and pieces are copied so later mutation of the source slices does not
// leak into the stored template.
func NewRunTemplate(name, description string, runs []BarRun, pieces []DirectPiece, settings ProjectSettings) RunTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return RunTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		BarRuns:     copyBarRuns(runs),
		FixedPieces: copyDirectPieces(pieces),
		Settings:    settings,
	}
}

// ToProject creates a new Project from this template. Runs and pieces get
// fresh IDs so they are independent of the template they came from.
func (t RunTemplate) ToProject(projectName string) Project {
	runs := make([]BarRun, len(t.BarRuns))
	for i, r := range t.BarRuns {
		runs[i] = NewBarRun(r.BarMark, r.MemberType, r.Dia, r.QtyParallel, r.TotalLengthMm, r.AllowedZones)
	}

	pieces := make([]DirectPiece, len(t.FixedPieces))
	for i, p := range t.FixedPieces {
		pieces[i] = NewDirectPiece(p.Dia, p.LengthMm, p.Qty)
	}

	return Project{
		Name:        projectName,
		Settings:    t.Settings,
		BarRuns:     runs,
		FixedPieces: pieces,
	}
}

// TemplateStore holds a collection of run templates.
type TemplateStore struct {
	Templates []RunTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []RunTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t RunTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *RunTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names, for listing in a CLI prompt.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *RunTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func copyBarRuns(runs []BarRun) []BarRun {
	if runs == nil {
		return []BarRun{}
	}
	cp := make([]BarRun, len(runs))
	copy(cp, runs)
	return cp
}

func copyDirectPieces(pieces []DirectPiece) []DirectPiece {
	if pieces == nil {
		return []DirectPiece{}
	}
	cp := make([]DirectPiece, len(pieces))
	copy(cp, pieces)
	return cp
}
