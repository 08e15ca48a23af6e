package models

// Settings represents the application configuration
type Settings struct {
	Panel PanelSettings `yaml:"panel"`
	UI    UISettings    `yaml:"ui"`
	Debug DebugSettings `yaml:"debug"`
}

// PanelSettings controls which operations the panel exposes
type PanelSettings struct {
	Label     string `yaml:"label" json:"label"`
	CanEdit   *bool  `yaml:"can_edit,omitempty" json:"canEdit,omitempty"`
	CanDelete *bool  `yaml:"can_delete,omitempty" json:"canDelete,omitempty"`
	CanOrder  bool   `yaml:"can_order" json:"canOrder"`
	Nested    bool   `yaml:"nested" json:"nested"`

	// HeaderTemplate renders collapsed card headers when set. It is a Go
	// text/template evaluated against the record, with sprig functions
	// available.
	HeaderTemplate string `yaml:"header_template,omitempty" json:"headerTemplate,omitempty"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowDeleted bool `yaml:"show_deleted"`
	CompactGaps bool `yaml:"compact_gaps"`
}

// DebugSettings controls the diagnostic log
type DebugSettings struct {
	Enabled bool   `yaml:"enabled"`
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Panel: PanelSettings{
			Label:    "Add",
			CanOrder: true,
		},
		UI: UISettings{
			ShowDeleted: true,
		},
		Debug: DebugSettings{
			LogFile: "formdeck.log",
		},
	}
}

// EffectiveCanEdit resolves the add/edit capability (default true).
func (p PanelSettings) EffectiveCanEdit() bool {
	if p.CanEdit == nil {
		return true
	}
	return *p.CanEdit
}

// EffectiveCanDelete resolves the delete capability (defaults to the edit
// capability).
func (p PanelSettings) EffectiveCanDelete() bool {
	if p.CanDelete == nil {
		return p.EffectiveCanEdit()
	}
	return *p.CanDelete
}
