package tui

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey is a keyboard shortcut with an optional label override for
// help text.
type ShortcutKey struct {
	Keys []string
	Help string
}

// Primary returns the key shown in help text.
func (s ShortcutKey) Primary() string {
	if len(s.Keys) == 0 {
		return ""
	}
	return s.Keys[0]
}

// Binding converts the shortcut to a bubbles key binding.
func (s ShortcutKey) Binding() key.Binding {
	return key.NewBinding(
		key.WithKeys(s.Keys...),
		key.WithHelp(FormatShortcutForHelp(s.Primary()), s.Help),
	)
}

// Shortcuts lists every global shortcut.
var Shortcuts = struct {
	Save   ShortcutKey
	SaveAs ShortcutKey
	Toggle ShortcutKey
	New    ShortcutKey
	Open   ShortcutKey
	Quit   ShortcutKey
	Exit   ShortcutKey
	Copy   ShortcutKey
	Paste  ShortcutKey
}{
	Save:   ShortcutKey{Keys: []string{"ctrl+s"}, Help: "save"},
	SaveAs: ShortcutKey{Keys: []string{"f12"}, Help: "save as"},
	Toggle: ShortcutKey{Keys: []string{"ctrl+e"}, Help: "edit/preview"},
	New:    ShortcutKey{Keys: []string{"ctrl+n"}, Help: "new"},
	Open:   ShortcutKey{Keys: []string{"ctrl+o"}, Help: "open"},
	Quit:   ShortcutKey{Keys: []string{"ctrl+q"}, Help: "quit"},
	Exit:   ShortcutKey{Keys: []string{"ctrl+c"}, Help: "force quit"},
	Copy:   ShortcutKey{Keys: []string{"ctrl+y"}, Help: "copy"},
	Paste:  ShortcutKey{Keys: []string{"ctrl+v"}, Help: "paste"},
}

// keyMap holds the bindings the app matches against.
type keyMap struct {
	Save   key.Binding
	SaveAs key.Binding
	Toggle key.Binding
	New    key.Binding
	Open   key.Binding
	Quit   key.Binding
	Exit   key.Binding
	Copy   key.Binding
	Paste  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Save:   Shortcuts.Save.Binding(),
		SaveAs: Shortcuts.SaveAs.Binding(),
		Toggle: Shortcuts.Toggle.Binding(),
		New:    Shortcuts.New.Binding(),
		Open:   Shortcuts.Open.Binding(),
		Quit:   Shortcuts.Quit.Binding(),
		Exit:   Shortcuts.Exit.Binding(),
		Copy:   Shortcuts.Copy.Binding(),
		Paste:  Shortcuts.Paste.Binding(),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.SaveAs, k.Open, k.New, k.Copy, k.Paste, k.Quit}
}

// GetTerminalSetupMessage returns OS-specific terminal setup instructions
func GetTerminalSetupMessage() string {
	switch GetOS() {
	case OSLinux:
		return "TIP: Run 'stty -ixon' to enable Ctrl+S and Ctrl+Q in your terminal"
	case OSWindows:
		return "TIP: For best experience, use Windows Terminal or PowerShell"
	default:
		return ""
	}
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(shortcut string) string {
	if GetOS() == OSLinux || GetOS() == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")

	// Function keys are shown upper case
	if strings.HasPrefix(shortcut, "f") && len(shortcut) <= 3 {
		return strings.ToUpper(shortcut)
	}
	return shortcut
}

// renderHelp joins the short help into one line.
func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, HelpKeyStyle.Render(h.Key)+" "+HelpStyle.Render(h.Desc))
	}
	return strings.Join(parts, HelpStyle.Render(" • "))
}
