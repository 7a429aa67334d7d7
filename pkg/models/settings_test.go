package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 1.5, s.Editor.NearBottomLines)
	assert.Equal(t, 0.8, s.Editor.BottomPaddingLines)
	assert.Equal(t, 24.0, s.Editor.FallbackLineHeight)
	assert.Equal(t, 650, s.Feedback.PulseMillis)
	assert.Equal(t, 1400, s.Feedback.NoticeMillis)
	assert.Equal(t, "untitled.md", s.Files.DefaultName)
	assert.Equal(t, []string{"md", "markdown"}, s.Files.Extensions)
}

func TestSettings_Normalize(t *testing.T) {
	s := &Settings{
		Editor:   EditorSettings{LineHeight: -1, NearBottomLines: 3, BottomPaddingLines: 0},
		Preview:  PreviewSettings{WordWrap: -5},
		Feedback: FeedbackSettings{PulseMillis: 100},
	}
	s.Normalize()

	assert.Equal(t, 1.0, s.Editor.LineHeight)
	assert.Equal(t, 3.0, s.Editor.NearBottomLines, "valid values are kept")
	assert.Equal(t, 0.0, s.Editor.BottomPaddingLines, "zero padding is allowed")
	assert.Equal(t, 4, s.Editor.TabWidth)
	assert.Equal(t, "dark", s.Preview.Style)
	assert.Equal(t, 0, s.Preview.WordWrap)
	assert.Equal(t, 100, s.Feedback.PulseMillis)
	assert.Equal(t, 1400, s.Feedback.NoticeMillis)
	assert.Equal(t, "untitled.md", s.Files.DefaultName)
}
