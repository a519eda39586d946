package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flyer/internal/core"
)

// KeyMap defines the key bindings for the flyer.
type KeyMap struct {
	Up        key.Binding
	Left      key.Binding
	Right     key.Binding
	Restart   key.Binding
	Pause     key.Binding
	Autopilot key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Right, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Right},
		{k.Restart, k.Pause, k.Autopilot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/w/space", "flap"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "bank left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "bank right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/space", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Autopilot: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "autopilot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a host action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Autopilot):
		return core.ActionAutopilot
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// Hold windows for HeldKeys
const (
	DefaultInitialHold = 450 * time.Millisecond // Covers the terminal's delay before key repeat starts
	DefaultRepeatHold  = 90 * time.Millisecond  // Covers the gap between repeats
)

// HeldKeys approximates which controls are held down. Terminals only report
// presses, so a control counts as held for a short window after each press,
// and the stream of auto-repeat presses keeps extending it.
type HeldKeys struct {
	InitialHold time.Duration
	RepeatHold  time.Duration

	until map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the default windows.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		InitialHold: DefaultInitialHold,
		RepeatHold:  DefaultRepeatHold,
		until:       make(map[core.Action]time.Time, 3),
	}
}

// Press records a press of a control at now. Pressing one lateral direction
// releases the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if !a.IsControl() {
		return
	}

	hold := h.InitialHold
	if h.held(a, now) {
		hold = h.RepeatHold
	}
	if end := now.Add(hold); end.After(h.until[a]) {
		h.until[a] = end
	}

	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
}

func (h *HeldKeys) held(a core.Action, now time.Time) bool {
	end, ok := h.until[a]
	return ok && now.Before(end)
}

// Frame samples the controls held at now.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	var f core.InputFrame
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionRight} {
		if h.held(a, now) {
			f.Set(a)
		}
	}
	return f
}

// Release drops every held control.
func (h *HeldKeys) Release() {
	clear(h.until)
}
