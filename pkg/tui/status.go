package tui

import (
	"fmt"
)

// StatusType represents the type of status message
type StatusType int

const (
	StatusTypeSuccess StatusType = iota
	StatusTypeWarning
	StatusTypeError
	StatusTypeInfo
)

// Icon returns the glyph shown before a message of this type.
func (t StatusType) Icon() string {
	switch t {
	case StatusTypeSuccess:
		return "✓"
	case StatusTypeWarning:
		return "⚠"
	case StatusTypeError:
		return "×"
	default:
		return "ℹ"
	}
}

// StatusManager holds the single status line. A message stays until the
// next one replaces it.
type StatusManager struct {
	message    string
	statusType StatusType
}

// NewStatusManager creates a status line showing message.
func NewStatusManager(message string) *StatusManager {
	return &StatusManager{message: message, statusType: StatusTypeInfo}
}

// Set replaces the status line.
func (sm *StatusManager) Set(message string, statusType StatusType) {
	sm.message = message
	sm.statusType = statusType
}

// ShowSuccess shows a success message
func (sm *StatusManager) ShowSuccess(message string) {
	sm.Set(message, StatusTypeSuccess)
}

// ShowWarning shows a warning message
func (sm *StatusManager) ShowWarning(message string) {
	sm.Set(message, StatusTypeWarning)
}

// ShowError shows an error message
func (sm *StatusManager) ShowError(message string) {
	sm.Set(message, StatusTypeError)
}

// ShowInfo shows an info message
func (sm *StatusManager) ShowInfo(message string) {
	sm.Set(message, StatusTypeInfo)
}

// Message returns the bare status text.
func (sm *StatusManager) Message() string {
	return sm.message
}

// Type returns the type of the current message.
func (sm *StatusManager) Type() StatusType {
	return sm.statusType
}

// GetStatus returns the status line with its icon.
func (sm *StatusManager) GetStatus() string {
	if sm.message == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", sm.statusType.Icon(), sm.message)
}
