package models

// Settings represents the application configuration
type Settings struct {
	Editor   EditorSettings   `yaml:"editor"`
	Preview  PreviewSettings  `yaml:"preview"`
	Feedback FeedbackSettings `yaml:"feedback"`
	Files    FileSettings     `yaml:"files"`
}

// EditorSettings controls the raw text pane. Heights are in layout units; the
// terminal pane uses one unit per row unless LineHeight says otherwise.
type EditorSettings struct {
	LineHeight         float64 `yaml:"line_height"`
	FallbackLineHeight float64 `yaml:"fallback_line_height"`
	NearBottomLines    float64 `yaml:"near_bottom_lines"`
	BottomPaddingLines float64 `yaml:"bottom_padding_lines"`
	TabWidth           int     `yaml:"tab_width"`
}

// PreviewSettings controls the rendered pane
type PreviewSettings struct {
	Style    string `yaml:"style"` // glamour standard style: dark, light, notty, ...
	WordWrap int    `yaml:"word_wrap"`
}

// FeedbackSettings controls the save feedback timers (milliseconds)
type FeedbackSettings struct {
	PulseMillis  int `yaml:"pulse_ms"`
	NoticeMillis int `yaml:"notice_ms"`
}

// FileSettings controls open/save dialogs
type FileSettings struct {
	DefaultName string   `yaml:"default_name"`
	Extensions  []string `yaml:"extensions"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			LineHeight:         1,
			FallbackLineHeight: 24,
			NearBottomLines:    1.5,
			BottomPaddingLines: 0.8,
			TabWidth:           4,
		},
		Preview: PreviewSettings{
			Style:    "dark",
			WordWrap: 0,
		},
		Feedback: FeedbackSettings{
			PulseMillis:  650,
			NoticeMillis: 1400,
		},
		Files: FileSettings{
			DefaultName: "untitled.md",
			Extensions:  []string{"md", "markdown"},
		},
	}
}

// Normalize replaces unusable values with their defaults.
func (s *Settings) Normalize() {
	def := DefaultSettings()

	if s.Editor.LineHeight <= 0 {
		s.Editor.LineHeight = def.Editor.LineHeight
	}
	if s.Editor.FallbackLineHeight <= 0 {
		s.Editor.FallbackLineHeight = def.Editor.FallbackLineHeight
	}
	if s.Editor.NearBottomLines <= 0 {
		s.Editor.NearBottomLines = def.Editor.NearBottomLines
	}
	if s.Editor.BottomPaddingLines < 0 {
		s.Editor.BottomPaddingLines = def.Editor.BottomPaddingLines
	}
	if s.Editor.TabWidth <= 0 {
		s.Editor.TabWidth = def.Editor.TabWidth
	}
	if s.Preview.Style == "" {
		s.Preview.Style = def.Preview.Style
	}
	if s.Preview.WordWrap < 0 {
		s.Preview.WordWrap = 0
	}
	if s.Feedback.PulseMillis <= 0 {
		s.Feedback.PulseMillis = def.Feedback.PulseMillis
	}
	if s.Feedback.NoticeMillis <= 0 {
		s.Feedback.NoticeMillis = def.Feedback.NoticeMillis
	}
	if s.Files.DefaultName == "" {
		s.Files.DefaultName = def.Files.DefaultName
	}
	if len(s.Files.Extensions) == 0 {
		s.Files.Extensions = def.Files.Extensions
	}
}
