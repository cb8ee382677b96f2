package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewLogin ViewID = iota
	ViewBoard
	ViewBacklog
	ViewRoadmap
	ViewDashboard
	ViewSettings
	ViewSwitcher
	ViewForm
	ViewDescription
)

// View is the interface all TUI views implement. It extends tea.Model
// with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that own a text input and must
// receive all key events, bypassing the global keybindings.
type inputCapturer interface {
	CapturingInput() bool
}

func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if c, ok := v.(inputCapturer); ok {
		return c.CapturingInput()
	}
	switch v.ID() {
	case ViewForm, ViewDescription:
		return true
	}
	return false
}
