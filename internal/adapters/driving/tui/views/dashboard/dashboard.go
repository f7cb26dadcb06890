// Package dashboard provides the candidate list view for the TUI.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/keymap"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/services"
)

// View is the candidate dashboard: the rendered form of the sync
// engine's last good snapshot, plus the delete confirmation prompt.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	candidates []domain.Candidate
	selected   int
	pending    *services.PendingDelete
	committing bool

	width  int
	height int
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km}
}

// SetCandidates replaces the rendered snapshot, keeping the cursor in
// range.
func (v *View) SetCandidates(candidates []domain.Candidate) {
	v.candidates = candidates
	if v.selected >= len(candidates) {
		v.selected = len(candidates) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

// SetPendingDelete shows or hides the confirmation prompt.
func (v *View) SetPendingDelete(p *services.PendingDelete) {
	v.pending = p
}

// SetCommitting marks the remote delete as in flight.
func (v *View) SetCommitting(on bool) {
	v.committing = on
}

// Update handles key presses for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	// The confirmation prompt captures all input while visible.
	if v.pending != nil {
		return v.updateConfirm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(keyMsg, v.keymap.Down):
		if v.selected < len(v.candidates)-1 {
			v.selected++
		}
	case key.Matches(keyMsg, v.keymap.Select):
		if c := v.highlighted(); c != nil {
			id := c.ID
			return v, func() tea.Msg {
				return messages.CandidateSelected{ID: id}
			}
		}
	case key.Matches(keyMsg, v.keymap.Upload):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewUpload}
		}
	case key.Matches(keyMsg, v.keymap.Delete):
		if c := v.highlighted(); c != nil {
			target := *c
			return v, func() tea.Msg {
				return messages.DeleteRequested{Candidate: &target}
			}
		}
	case key.Matches(keyMsg, v.keymap.Refresh):
		return v, func() tea.Msg {
			return messages.RefreshRequested{Silent: false}
		}
	case key.Matches(keyMsg, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	case key.Matches(keyMsg, v.keymap.Quit):
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}
	return v, nil
}

// updateConfirm handles input while the delete prompt is up.
func (v *View) updateConfirm(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.committing {
		// No input while the delete is in flight.
		return v, nil
	}
	switch {
	case key.Matches(msg, v.keymap.Confirm):
		return v, func() tea.Msg {
			return messages.DeleteConfirmed{}
		}
	case key.Matches(msg, v.keymap.Cancel):
		return v, func() tea.Msg {
			return messages.DeleteCancelled{}
		}
	}
	return v, nil
}

// highlighted returns the candidate under the cursor, nil when empty.
func (v *View) highlighted() *domain.Candidate {
	if len(v.candidates) == 0 || v.selected >= len(v.candidates) {
		return nil
	}
	return &v.candidates[v.selected]
}

// View renders the candidate table and, when pending, the delete prompt.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Candidate Dashboard"))
	b.WriteString("\n\n")

	if len(v.candidates) == 0 {
		b.WriteString(v.styles.Muted.Render("No candidates yet. Press u to upload a resume."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.renderHeader())
		b.WriteString("\n")
		for i := range v.candidates {
			b.WriteString(v.renderRow(i, &v.candidates[i]))
			b.WriteString("\n")
		}
	}

	if v.pending != nil {
		b.WriteString("\n")
		b.WriteString(v.renderConfirm())
		b.WriteString("\n")
	}

	return b.String()
}

// renderHeader renders the table header line.
func (v *View) renderHeader() string {
	return v.styles.Subtitle.Render(fmt.Sprintf("  %-24s %-28s %-20s %-10s",
		"Name", "Email", "Company", "Status"))
}

// renderRow renders one candidate line.
func (v *View) renderRow(index int, c *domain.Candidate) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	line := fmt.Sprintf("%s%-24s %-28s %-20s %-10s",
		indicator,
		truncate(c.DisplayName(), 24),
		truncate(c.Email, 28),
		truncate(c.Company, 20),
		string(c.ExtractionStatus),
	)

	if index == v.selected {
		return v.styles.Selected.Render(line)
	}
	return v.styles.Normal.Render(line)
}

// renderConfirm renders the delete confirmation prompt.
func (v *View) renderConfirm() string {
	name := v.pending.DisplayName
	if name == "" {
		name = v.pending.CandidateID
	}
	body := fmt.Sprintf("Delete %s?\nThis also destroys their documents and cannot be undone.\n\n", name)
	if v.committing {
		body += v.styles.Muted.Render("Deleting...")
	} else {
		body += v.styles.Help.Render("[y] delete  [n] cancel")
	}
	modal := v.styles.Modal.Render(body)
	if v.width > 0 {
		return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, modal)
	}
	return modal
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Candidates returns the rendered snapshot.
func (v *View) Candidates() []domain.Candidate {
	return v.candidates
}

// SelectedIndex returns the cursor position.
func (v *View) SelectedIndex() int {
	return v.selected
}

// truncate shortens s to max characters with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
