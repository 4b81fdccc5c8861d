package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultRoundingStepMm    int               `json:"default_rounding_step_mm"`
	DefaultKerfMm            int               `json:"default_kerf_mm"`
	DefaultMinLeftoverMm     int               `json:"default_min_leftover_mm"`
	DefaultBeamDepthMm       int               `json:"default_beam_depth_mm"`
	DefaultOptimizationLevel OptimizationLevel `json:"default_optimization_level"`
	DefaultInventoryStrategy InventoryStrategy `json:"default_inventory_strategy"`

	// Application preferences
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentProjects   []string `json:"recent_projects"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultRoundingStepMm:    defaults.RoundingStepMm,
		DefaultKerfMm:            defaults.KerfMm,
		DefaultMinLeftoverMm:     defaults.MinLeftoverMm,
		DefaultBeamDepthMm:       defaults.BeamDepthMm,
		DefaultOptimizationLevel: defaults.OptimizationLevel,
		DefaultInventoryStrategy: defaults.InventoryStrategy,
		AutoSaveInterval:         0,
		RecentProjects:           []string{},
		Theme:                    "system",
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// ProjectSettings struct. Used when creating a new project so it inherits
// the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *ProjectSettings) {
	s.RoundingStepMm = c.DefaultRoundingStepMm
	s.KerfMm = c.DefaultKerfMm
	s.MinLeftoverMm = c.DefaultMinLeftoverMm
	s.BeamDepthMm = c.DefaultBeamDepthMm
	s.OptimizationLevel = c.DefaultOptimizationLevel
	s.InventoryStrategy = c.DefaultInventoryStrategy
}
