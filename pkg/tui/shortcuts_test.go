package tui

import (
	"runtime"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

func TestGetOS(t *testing.T) {
	os := GetOS()

	switch runtime.GOOS {
	case "darwin":
		if os != OSMac {
			t.Errorf("Expected OSMac for darwin, got %v", os)
		}
	case "linux":
		if os != OSLinux {
			t.Errorf("Expected OSLinux for linux, got %v", os)
		}
	case "windows":
		if os != OSWindows {
			t.Errorf("Expected OSWindows for windows, got %v", os)
		}
	}
}

func TestFormatShortcutForHelp(t *testing.T) {
	tests := []struct {
		shortcut string
		want     string
	}{
		{"ctrl+s", "^s"},
		{"f12", "F12"},
		{"shift+tab", "⇧tab"},
		{"esc", "esc"},
	}

	for _, tt := range tests {
		t.Run(tt.shortcut, func(t *testing.T) {
			if got := FormatShortcutForHelp(tt.shortcut); got != tt.want {
				t.Errorf("FormatShortcutForHelp(%q) = %q, want %q", tt.shortcut, got, tt.want)
			}
		})
	}
}

func TestKeyMapMatches(t *testing.T) {
	keys := newKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"save", tea.KeyMsg{Type: tea.KeyCtrlS}, keys.Save},
		{"save as", tea.KeyMsg{Type: tea.KeyF12}, keys.SaveAs},
		{"toggle", tea.KeyMsg{Type: tea.KeyCtrlE}, keys.Toggle},
		{"new", tea.KeyMsg{Type: tea.KeyCtrlN}, keys.New},
		{"open", tea.KeyMsg{Type: tea.KeyCtrlO}, keys.Open},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlQ}, keys.Quit},
		{"copy", tea.KeyMsg{Type: tea.KeyCtrlY}, keys.Copy},
		{"paste", tea.KeyMsg{Type: tea.KeyCtrlV}, keys.Paste},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%s binding did not match %q", tt.name, tt.msg.String())
			}
		})
	}
}

func TestGetTerminalSetupMessage(t *testing.T) {
	msg := GetTerminalSetupMessage()

	switch runtime.GOOS {
	case "linux":
		if !strings.Contains(msg, "stty -ixon") {
			t.Errorf("Linux setup message should mention 'stty -ixon', got: %s", msg)
		}
	case "windows":
		if !strings.Contains(msg, "Windows Terminal") {
			t.Errorf("Windows setup message should mention terminal choice, got: %s", msg)
		}
	default:
		if msg != "" {
			t.Errorf("Expected empty setup message for %s, got: %s", runtime.GOOS, msg)
		}
	}
}

func TestRenderHelp(t *testing.T) {
	help := renderHelp(newKeyMap().ShortHelp())
	for _, want := range []string{"^e", "edit/preview", "F12", "save as", "^q"} {
		if !strings.Contains(help, want) {
			t.Errorf("help line missing %q: %s", want, help)
		}
	}
}
