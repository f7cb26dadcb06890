package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/services"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testView() *View {
	v := NewView(nil, nil)
	v.SetCandidates([]domain.Candidate{
		{ID: "c-1", Name: "Asha Rao", Email: "asha@example.com"},
		{ID: "c-2", Name: "Vikram Mehta", Email: "vikram@example.com"},
	})
	return v
}

func TestDashboardNavigation(t *testing.T) {
	v := testView()
	assert.Equal(t, 0, v.SelectedIndex())

	v, _ = v.Update(keyMsg('j'))
	assert.Equal(t, 1, v.SelectedIndex())

	// Cursor stops at the bottom.
	v, _ = v.Update(keyMsg('j'))
	assert.Equal(t, 1, v.SelectedIndex())

	v, _ = v.Update(keyMsg('k'))
	assert.Equal(t, 0, v.SelectedIndex())
	v, _ = v.Update(keyMsg('k'))
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestDashboardSelectEmitsCandidateID(t *testing.T) {
	v := testView()
	v, _ = v.Update(keyMsg('j'))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.CandidateSelected)
	require.True(t, ok)
	assert.Equal(t, "c-2", msg.ID)
}

func TestDashboardSelectOnEmptyListDoesNothing(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestDashboardDeleteEmitsRequest(t *testing.T) {
	v := testView()

	_, cmd := v.Update(keyMsg('d'))
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.DeleteRequested)
	require.True(t, ok)
	require.NotNil(t, msg.Candidate)
	assert.Equal(t, "c-1", msg.Candidate.ID)
}

func TestDashboardRefreshIsNonSilent(t *testing.T) {
	v := testView()

	_, cmd := v.Update(keyMsg('r'))
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.RefreshRequested)
	require.True(t, ok)
	assert.False(t, msg.Silent)
}

func TestDashboardConfirmPromptCapturesInput(t *testing.T) {
	v := testView()
	v.SetPendingDelete(&services.PendingDelete{CandidateID: "c-1", DisplayName: "Asha Rao"})

	// Navigation is swallowed while the prompt is up.
	v, cmd := v.Update(keyMsg('j'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, v.SelectedIndex())

	_, cmd = v.Update(keyMsg('y'))
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.DeleteConfirmed)
	assert.True(t, ok)

	_, cmd = v.Update(keyMsg('n'))
	require.NotNil(t, cmd)
	_, ok = cmd().(messages.DeleteCancelled)
	assert.True(t, ok)
}

func TestDashboardCommittingBlocksAllInput(t *testing.T) {
	v := testView()
	v.SetPendingDelete(&services.PendingDelete{CandidateID: "c-1"})
	v.SetCommitting(true)

	_, cmd := v.Update(keyMsg('y'))
	assert.Nil(t, cmd)
	_, cmd = v.Update(keyMsg('n'))
	assert.Nil(t, cmd)
}

func TestDashboardCursorClampsOnShrunkSnapshot(t *testing.T) {
	v := testView()
	v, _ = v.Update(keyMsg('j'))
	require.Equal(t, 1, v.SelectedIndex())

	v.SetCandidates([]domain.Candidate{{ID: "c-1", Name: "Asha Rao"}})
	assert.Equal(t, 0, v.SelectedIndex())

	v.SetCandidates(nil)
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestDashboardViewRendersRows(t *testing.T) {
	v := testView()
	out := v.View()

	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "Vikram Mehta")
	assert.Contains(t, out, "Candidate Dashboard")
}

func TestDashboardViewRendersConfirmPrompt(t *testing.T) {
	v := testView()
	v.SetPendingDelete(&services.PendingDelete{CandidateID: "c-1", DisplayName: "Asha Rao"})

	out := v.View()
	assert.Contains(t, out, "Delete Asha Rao?")
	assert.Contains(t, out, "cannot be undone")
}

func TestDashboardViewEmptyState(t *testing.T) {
	v := NewView(nil, nil)
	assert.Contains(t, v.View(), "No candidates yet")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "toolong...", truncate("toolongvalue", 10))
}
