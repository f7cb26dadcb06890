// Package upload provides the resume upload view: a path prompt, a
// live transfer bar and the plumbing that feeds progress back into the
// event loop.
package upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/keymap"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driving"
	"github.com/parassrivastav/traqcheck-cli/internal/core/services"
	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// View renders the upload form and owns the upload tracker. The
// transfer runs in a command goroutine; progress and completion come
// back as messages so all state changes happen on the event loop.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	uploads driving.UploadService
	tracker *services.UploadTracker

	input  textinput.Model
	bar    progress.Model
	events chan tea.Msg

	width  int
	height int
}

// NewView creates a new upload view.
func NewView(s *styles.Styles, km *keymap.KeyMap, uploads driving.UploadService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	input := textinput.New()
	input.Placeholder = "Path to resume (.pdf or .docx)"
	input.Focus()

	// No animation on the bar: the latest reported value is rendered
	// verbatim, so a jump from 25 to 60 draws as a jump.
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40

	return &View{
		styles:  s,
		keymap:  km,
		uploads: uploads,
		tracker: services.NewUploadTracker(),
		input:   input,
		bar:     bar,
	}
}

// Tracker exposes the upload tracker, mainly for the status surface.
func (v *View) Tracker() *services.UploadTracker {
	return v.tracker
}

// Begin starts an upload for path. A transfer already in flight wins:
// the new request is dropped and nil is returned.
func (v *View) Begin(path string) tea.Cmd {
	if v.uploads == nil || strings.TrimSpace(path) == "" {
		return nil
	}
	if err := v.tracker.Start(path); err != nil {
		logger.Debug("upload of %s dropped: %v", path, err)
		return nil
	}

	// Blocking sends on a buffered channel: the listen command drains
	// until the done event arrives, so the transfer never stalls.
	ch := make(chan tea.Msg, 32)
	v.events = ch
	transfer := func() tea.Msg {
		go func() {
			outcome, err := v.uploads.Upload(context.Background(), path, func(percent int) {
				ch <- messages.UploadProgressed{Percent: percent}
			})
			ch <- messages.UploadTransferDone{Outcome: outcome, Err: err}
		}()
		return messages.UploadStarted{File: path}
	}
	return tea.Batch(transfer, v.listen())
}

// listen returns a command that delivers the next transfer event.
func (v *View) listen() tea.Cmd {
	ch := v.events
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return <-ch
	}
}

// Update handles input and transfer events for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.UploadProgressed:
		v.tracker.Progress(msg.Percent)
		return v, v.listen()

	case messages.UploadTransferDone:
		v.events = nil
		var result services.UploadResult
		if msg.Err != nil {
			result = v.tracker.Fail(msg.Err)
		} else {
			result = v.tracker.Succeed(msg.Outcome.StageMessages)
		}
		return v, func() tea.Msg {
			return messages.UploadFinished{Outcome: &result}
		}

	case tea.KeyMsg:
		return v.updateKey(msg)
	}
	return v, nil
}

// updateKey handles keyboard input.
func (v *View) updateKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDashboard}
		}
	case tea.KeyEnter:
		path := strings.TrimSpace(v.input.Value())
		cmd := v.Begin(path)
		if cmd != nil {
			v.input.SetValue("")
		}
		return v, cmd
	}

	// Typing is pointless mid-transfer; the single in-flight upload
	// keeps the form read-only until it finishes.
	if v.tracker.Phase() == services.UploadRunning {
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the upload form.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Upload Resume"))
	b.WriteString("\n\n")

	switch v.tracker.Phase() {
	case services.UploadRunning:
		percent := v.tracker.Percent()
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Uploading %s", v.tracker.File())))
		b.WriteString("\n\n")
		b.WriteString(v.bar.ViewAs(float64(percent) / 100))
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d%%", percent)))
		b.WriteString("\n")
	case services.UploadSucceeded:
		b.WriteString(v.styles.Success.Render("Upload complete."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.InputField.Render(v.input.View()))
		b.WriteString("\n")
	case services.UploadFailed:
		b.WriteString(v.styles.Error.Render("Upload failed. Try again."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.InputField.Render(v.input.View()))
		b.WriteString("\n")
	default:
		b.WriteString(v.styles.InputField.Render(v.input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] upload  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.bar.Width = min(width-10, 50)
	if v.bar.Width < 10 {
		v.bar.Width = 10
	}
}
