// Package status provides the status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/keymap"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/styles"
)

// State represents the sync state shown on the left of the bar.
type State string

const (
	StateReady    State = "ready"
	StateSyncing  State = "syncing"
	StateRetrying State = "retrying"
)

// Bar displays sync state, candidate count and keybinding hints.
type Bar struct {
	styles         *styles.Styles
	keymap         *keymap.KeyMap
	state          State
	candidateCount int
	profileHints   bool
	width          int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the sync state and candidate count.
func (b *Bar) renderLeft() string {
	switch b.state {
	case StateSyncing:
		return b.styles.Muted.Render("Syncing...")
	case StateRetrying:
		// Silent failures surface here, never as toasts.
		return b.styles.Warning.Render("Unable to fetch candidates, retrying...")
	case StateReady:
		if b.candidateCount > 0 {
			return b.styles.Normal.Render(fmt.Sprintf("%d candidates", b.candidateCount))
		}
		return b.styles.Muted.Render("Ready")
	}
	return b.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints for the active view.
func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.profileHints {
		bindings = b.keymap.ProfileHelp()
	} else {
		bindings = b.keymap.DashboardHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, bd := range bindings {
		h := bd.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the sync state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current sync state.
func (b *Bar) State() State {
	return b.state
}

// SetCandidateCount sets the displayed candidate count.
func (b *Bar) SetCandidateCount(count int) {
	b.candidateCount = count
}

// SetProfileHints switches the hint set between dashboard and profile.
func (b *Bar) SetProfileHints(on bool) {
	b.profileHints = on
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}
