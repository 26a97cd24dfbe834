package models

// Settings represents the application configuration
type Settings struct {
	UI         UISettings         `yaml:"ui"`
	Editor     EditorSettings     `yaml:"editor"`
	Simulation SimulationSettings `yaml:"simulation"`
	Validation ValidationSettings `yaml:"validation"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowLibrary    bool `yaml:"show_library"`
	ShowAssistant  bool `yaml:"show_assistant"`
	SidebarWidth   int  `yaml:"sidebar_width"`
	AssistantWidth int  `yaml:"assistant_width"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	ShowLineNumbers bool `yaml:"show_line_numbers"`
}

// SimulationSettings controls the latency of simulated assistant work,
// in milliseconds.
type SimulationSettings struct {
	UploadTickMs      int `yaml:"upload_tick_ms"`
	AnalysisDelayMs   int `yaml:"analysis_delay_ms"`
	GenerationDelayMs int `yaml:"generation_delay_ms"`
	ValidationDelayMs int `yaml:"validation_delay_ms"`
}

// ValidationSettings controls the document validation score.
type ValidationSettings struct {
	InitialScore  int `yaml:"initial_score"`
	FixScoreDelta int `yaml:"fix_score_delta"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			ShowLibrary:    true,
			ShowAssistant:  true,
			SidebarWidth:   28,
			AssistantWidth: 44,
		},
		Editor: EditorSettings{
			ShowLineNumbers: true,
		},
		Simulation: SimulationSettings{
			UploadTickMs:      250,
			AnalysisDelayMs:   1500,
			GenerationDelayMs: 2000,
			ValidationDelayMs: 1200,
		},
		Validation: ValidationSettings{
			InitialScore:  82,
			FixScoreDelta: 4,
		},
	}
}
