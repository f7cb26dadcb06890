package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/components/status"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/components/toast"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/keymap"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/views/profile"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/views/upload"
	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/services"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea. All engine state
// changes happen inside Update; commands only perform the I/O and feed
// completions back as messages.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// engine keeps the candidate snapshot in sync with the server.
	engine *services.SyncEngine

	// deletes guards the destructive delete behind a confirmation.
	deletes *services.DeleteFlow

	// toaster owns the notification queue and its wake-up timer.
	toaster *toast.Toaster

	// statusBar is the persistent bottom bar.
	statusBar *status.Bar

	// dashboardView is the candidate list view.
	dashboardView *dashboard.View

	// profileView is the candidate detail view.
	profileView *profile.View

	// uploadView is the resume upload view.
	uploadView *upload.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// pollGeneration guards against poll ticks from a torn-down chain.
	pollGeneration uint64

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		engine:        services.NewSyncEngine(),
		deletes:       services.NewDeleteFlow(),
		toaster:       toast.New(s),
		statusBar:     status.NewBar(s, km),
		dashboardView: dashboard.NewView(s, km),
		profileView:   profile.NewView(s, km, ports.Candidate, ports.Document),
		uploadView:    upload.NewView(s, km, ports.Upload),
		currentView:   messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It loads the candidate list, arms the
// recurring poll and starts listening for dropped resumes.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("traqcheck - Candidate Tracker"),
		a.refreshCmd(false),
		a.schedulePoll(),
		a.listenDrops(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.dashboardView.SetDimensions(msg.Width, msg.Height)
		a.profileView.SetDimensions(msg.Width, msg.Height)
		a.uploadView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateKey(msg)

	case messages.Quit:
		return a, tea.Quit

	case messages.ViewChanged:
		a.currentView = msg.View
		a.statusBar.SetProfileHints(msg.View == messages.ViewProfile)
		return a, nil

	case messages.RefreshRequested:
		return a, a.refreshCmd(msg.Silent)

	case messages.PollTick:
		if msg.Generation != a.pollGeneration {
			return a, nil
		}
		return a, tea.Batch(a.refreshCmd(true), a.schedulePoll())

	case messages.RetryDue:
		a.engine.RetryDue()
		return a, a.refreshCmd(true)

	case messages.CandidatesLoaded:
		return a.applyRefresh(msg)

	case messages.CandidateSelected:
		return a, a.selectCmd(msg.ID)

	case messages.CandidateLoaded:
		return a.applySelect(msg)

	case messages.DocumentsLoaded:
		return a.applyDocuments(msg)

	case messages.DeleteRequested:
		a.deletes.Request(msg.Candidate)
		a.dashboardView.SetPendingDelete(a.deletes.Pending())
		return a, nil

	case messages.DeleteCancelled:
		a.deletes.Cancel()
		a.dashboardView.SetPendingDelete(nil)
		return a, nil

	case messages.DeleteConfirmed:
		target := a.deletes.Confirm()
		if target == nil {
			return a, nil
		}
		a.dashboardView.SetPendingDelete(nil)
		a.dashboardView.SetCommitting(true)
		return a, a.deleteCmd(target.CandidateID)

	case messages.DeleteCommitted:
		return a.applyDelete(msg)

	case messages.ResumeDropped:
		a.currentView = messages.ViewUpload
		a.statusBar.SetProfileHints(false)
		return a, tea.Batch(a.uploadView.Begin(msg.Path), a.listenDrops())

	case messages.UploadStarted, messages.UploadProgressed, messages.UploadTransferDone:
		// Transfer events always reach the upload view, even when the
		// user has navigated away mid-upload.
		a.uploadView, cmd = a.uploadView.Update(msg)
		return a, cmd

	case messages.UploadFinished:
		return a.applyUpload(msg)

	case messages.TelegramUpdated:
		if msg.Err != nil {
			return a, a.toaster.Notify(services.NoticeFromError(msg.Err, "Error updating Telegram username"))
		}
		cmds := []tea.Cmd{a.toaster.Enqueue("Telegram username updated", domain.SeveritySuccess)}
		if selected := a.engine.Selected(); selected != nil {
			cmds = append(cmds, a.selectCmd(selected.ID))
		}
		return a, tea.Batch(cmds...)

	case messages.DocumentsRequested:
		if msg.Err != nil {
			return a, a.toaster.Notify(services.NoticeFromError(msg.Err, "Error requesting documents"))
		}
		text := msg.Message
		if text == "" {
			text = "Document request sent"
		}
		return a, tea.Batch(
			a.toaster.Enqueue(text, domain.SeveritySuccess),
			a.documentsCmd(),
		)

	case messages.DocumentsSubmitted:
		if msg.Err != nil {
			return a, a.toaster.Notify(services.NoticeFromError(msg.Err, "Error submitting documents"))
		}
		return a, tea.Batch(
			a.toaster.Enqueue("Documents submitted successfully", domain.SeveritySuccess),
			a.documentsCmd(),
		)

	case messages.ToastTick:
		a.toaster, cmd = a.toaster.Update(msg)
		return a, cmd
	}

	// Forward other messages to the active view.
	switch a.currentView {
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewProfile:
		a.profileView, cmd = a.profileView.Update(msg)
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}
	return a, cmd
}

// updateKey forwards keyboard input to the active view.
func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewProfile:
		a.profileView, cmd = a.profileView.Update(msg)
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewDashboard
		}
	}
	return a, cmd
}

// applyRefresh feeds a completed list fetch into the sync engine and
// reflects the outcome in the dashboard and status bar.
func (a *App) applyRefresh(msg messages.CandidatesLoaded) (tea.Model, tea.Cmd) {
	out := a.engine.ApplyRefresh(msg.Token, msg.Candidates, msg.Err)
	if !out.Applied {
		return a, nil
	}

	if a.engine.Failed() {
		a.statusBar.SetState(status.StateRetrying)
	} else {
		a.statusBar.SetState(status.StateReady)
		a.dashboardView.SetCandidates(a.engine.Candidates())
		a.statusBar.SetCandidateCount(len(a.engine.Candidates()))
	}

	cmds := []tea.Cmd{a.toaster.Notify(out.Notify)}
	if out.ScheduleRetry {
		cmds = append(cmds, a.scheduleRetry(msg.Token))
	}
	return a, tea.Batch(cmds...)
}

// applySelect feeds a completed detail fetch into the sync engine and
// opens the profile on success.
func (a *App) applySelect(msg messages.CandidateLoaded) (tea.Model, tea.Cmd) {
	out := a.engine.ApplySelect(msg.Token, msg.Candidate, msg.Err)
	if !out.Applied {
		return a, nil
	}

	cmds := []tea.Cmd{a.toaster.Notify(out.Notify)}
	if out.FetchDocuments {
		a.profileView.SetCandidate(a.engine.Selected())
		a.currentView = messages.ViewProfile
		a.statusBar.SetProfileHints(true)
		cmds = append(cmds, a.fetchDocumentsCmd(msg.Token, a.engine.Selected().ID))
	}
	return a, tea.Batch(cmds...)
}

// applyDocuments feeds a completed document fetch into the sync engine.
// A failure keeps the candidate selection, the list alone degrades.
func (a *App) applyDocuments(msg messages.DocumentsLoaded) (tea.Model, tea.Cmd) {
	out := a.engine.ApplyDocuments(msg.Token, msg.Documents, msg.Err)
	if !out.Applied {
		return a, nil
	}

	if out.Notify != nil {
		a.profileView.SetDocumentsFailed()
		return a, a.toaster.Notify(out.Notify)
	}
	a.profileView.SetDocuments(a.engine.Documents())
	return a, nil
}

// applyDelete feeds the remote delete completion into the workflow and
// removes the candidate locally on success.
func (a *App) applyDelete(msg messages.DeleteCommitted) (tea.Model, tea.Cmd) {
	result := a.deletes.Finish(msg.Err)
	a.dashboardView.SetCommitting(false)

	cmds := []tea.Cmd{a.toaster.Notify(result.Notify)}
	if result.Removed != "" {
		selectedGone := a.engine.Selected() != nil && a.engine.Selected().ID == result.Removed
		a.engine.RemoveCandidate(result.Removed)
		a.dashboardView.SetCandidates(a.engine.Candidates())
		a.statusBar.SetCandidateCount(len(a.engine.Candidates()))
		if selectedGone && a.currentView == messages.ViewProfile {
			a.currentView = messages.ViewDashboard
			a.statusBar.SetProfileHints(false)
		}
	}
	if result.SilentRefresh {
		cmds = append(cmds, a.refreshCmd(true))
	}
	return a, tea.Batch(cmds...)
}

// applyUpload surfaces the terminal upload outcome: the staged success
// sequence or a single error, then a fresh candidate list.
func (a *App) applyUpload(msg messages.UploadFinished) (tea.Model, tea.Cmd) {
	if msg.Outcome == nil {
		return a, nil
	}
	var cmds []tea.Cmd
	if len(msg.Outcome.StageMessages) > 0 {
		cmds = append(cmds, a.toaster.EnqueueSequence(msg.Outcome.StageMessages, domain.SeveritySuccess))
	}
	cmds = append(cmds, a.toaster.Notify(msg.Outcome.Notify))
	if msg.Outcome.Refresh {
		cmds = append(cmds, a.refreshCmd(false))
	}
	return a, tea.Batch(cmds...)
}

// refreshCmd issues a refresh token and fetches the candidate list.
func (a *App) refreshCmd(silent bool) tea.Cmd {
	tok := a.engine.BeginRefresh(silent)
	if !silent && !a.engine.Failed() {
		a.statusBar.SetState(status.StateSyncing)
	}
	return func() tea.Msg {
		list, err := a.ports.Candidate.List(a.ctx)
		return messages.CandidatesLoaded{Token: tok, Candidates: list, Err: err}
	}
}

// selectCmd issues a selection token and fetches one candidate's detail.
func (a *App) selectCmd(id string) tea.Cmd {
	tok := a.engine.BeginSelect(id)
	return func() tea.Msg {
		candidate, err := a.ports.Candidate.Get(a.ctx, id)
		return messages.CandidateLoaded{Token: tok, Candidate: candidate, Err: err}
	}
}

// fetchDocumentsCmd fetches the document list for a selection token.
func (a *App) fetchDocumentsCmd(tok services.SelectToken, candidateID string) tea.Cmd {
	return func() tea.Msg {
		docs, err := a.ports.Document.List(a.ctx, candidateID)
		return messages.DocumentsLoaded{Token: tok, Documents: docs, Err: err}
	}
}

// documentsCmd re-fetches documents for the live selection, used after
// profile actions that change the document set.
func (a *App) documentsCmd() tea.Cmd {
	selected := a.engine.Selected()
	if selected == nil {
		return nil
	}
	return a.fetchDocumentsCmd(a.engine.CurrentSelectToken(), selected.ID)
}

// deleteCmd performs the remote delete for a confirmed target.
func (a *App) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Candidate.Delete(a.ctx, id)
		return messages.DeleteCommitted{Err: err}
	}
}

// schedulePoll arms the next recurring silent refresh, invalidating any
// tick already in flight.
func (a *App) schedulePoll() tea.Cmd {
	a.pollGeneration++
	gen := a.pollGeneration
	return tea.Tick(domain.PollInterval, func(time.Time) tea.Msg {
		return messages.PollTick{Generation: gen}
	})
}

// scheduleRetry arms the single silent retry after a failed non-silent
// refresh.
func (a *App) scheduleRetry(tok services.RefreshToken) tea.Cmd {
	return tea.Tick(domain.RetryDelay, func(time.Time) tea.Msg {
		return messages.RetryDue{Token: tok}
	})
}

// listenDrops delivers the next dropped resume path, when a drop
// directory is being watched.
func (a *App) listenDrops() tea.Cmd {
	ch := a.ports.Drops
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return messages.ResumeDropped{Path: path}
	}
}

// View implements tea.Model.
// It renders the active view, the toast stack and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var content string
	switch a.currentView {
	case messages.ViewDashboard:
		content = a.dashboardView.View()
	case messages.ViewProfile:
		content = a.profileView.View()
	case messages.ViewUpload:
		content = a.uploadView.View()
	case messages.ViewHelp:
		content = a.viewHelp()
	}

	sections := []string{content}
	if toasts := a.toaster.View(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, a.statusBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	s := a.styles
	rows := []struct{ keys, desc string }{
		{"↑/k, ↓/j", "move between candidates"},
		{"enter", "open candidate profile"},
		{"r", "refresh candidate list"},
		{"u", "upload a resume"},
		{"d", "delete the highlighted candidate"},
		{"t", "set Telegram username (profile)"},
		{"g", "request identity documents (profile)"},
		{"s", "submit identity documents (profile)"},
		{"esc", "back"},
		{"q, ctrl+c", "quit"},
	}

	out := s.Title.Render("Keybindings") + "\n\n"
	for _, r := range rows {
		out += fmt.Sprintf("  %s  %s\n",
			s.Normal.Render(fmt.Sprintf("%-12s", r.keys)),
			s.Muted.Render(r.desc))
	}
	return out
}

// Ready reports whether the first window size arrived.
func (a *App) Ready() bool {
	return a.ready
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Engine exposes the sync engine, for tests.
func (a *App) Engine() *services.SyncEngine {
	return a.engine
}
