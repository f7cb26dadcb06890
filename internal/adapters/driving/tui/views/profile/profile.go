// Package profile provides the candidate profile view: extracted detail,
// identity documents and the per-candidate actions.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/keymap"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driving"
)

// mode is the profile view's input mode.
type mode int

const (
	modeViewing mode = iota
	modeTelegram
	modeDocsPan
	modeDocsAadhaar
)

// View renders the selected candidate and drives the profile actions:
// telegram linking, document requests and identity-document submission.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	candidates driving.CandidateService
	documents  driving.DocumentService

	candidate *domain.Candidate
	docs      []domain.Document
	docsErr   bool

	mode          mode
	telegramInput textinput.Model
	panInput      textinput.Model
	aadhaarInput  textinput.Model

	width  int
	height int
}

// NewView creates a new profile view.
func NewView(s *styles.Styles, km *keymap.KeyMap, candidates driving.CandidateService, documents driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	telegram := textinput.New()
	telegram.Placeholder = "Enter Telegram username"
	telegram.CharLimit = 64

	pan := textinput.New()
	pan.Placeholder = "Path to PAN file"
	aadhaar := textinput.New()
	aadhaar.Placeholder = "Path to Aadhaar file"

	return &View{
		styles:        s,
		keymap:        km,
		candidates:    candidates,
		documents:     documents,
		telegramInput: telegram,
		panInput:      pan,
		aadhaarInput:  aadhaar,
	}
}

// SetCandidate replaces the displayed candidate. Any prior snapshot is
// discarded; the document list arrives separately.
func (v *View) SetCandidate(c *domain.Candidate) {
	v.candidate = c
	v.docs = nil
	v.docsErr = false
	v.mode = modeViewing
	v.telegramInput.SetValue("")
	v.panInput.SetValue("")
	v.aadhaarInput.SetValue("")
}

// SetDocuments replaces the displayed document list.
func (v *View) SetDocuments(docs []domain.Document) {
	v.docs = docs
	v.docsErr = false
}

// SetDocumentsFailed marks the document fetch as failed while keeping
// the candidate selection.
func (v *View) SetDocumentsFailed() {
	v.docsErr = true
}

// Candidate returns the displayed candidate, nil when none.
func (v *View) Candidate() *domain.Candidate {
	return v.candidate
}

// Update handles input for the profile view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.candidate == nil {
		return v, nil
	}

	switch v.mode {
	case modeTelegram:
		return v.updateTelegram(keyMsg)
	case modeDocsPan, modeDocsAadhaar:
		return v.updateDocs(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDashboard}
		}
	case key.Matches(keyMsg, v.keymap.Telegram):
		v.mode = modeTelegram
		v.telegramInput.Focus()
		return v, textinput.Blink
	case key.Matches(keyMsg, v.keymap.RequestDocs):
		return v, v.requestDocuments()
	case key.Matches(keyMsg, v.keymap.SubmitDocs):
		v.mode = modeDocsPan
		v.panInput.Focus()
		return v, textinput.Blink
	case key.Matches(keyMsg, v.keymap.Quit):
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}
	return v, nil
}

// updateTelegram handles input while editing the telegram username.
func (v *View) updateTelegram(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.mode = modeViewing
		v.telegramInput.Blur()
		return v, nil
	case tea.KeyEnter:
		username := v.telegramInput.Value()
		v.mode = modeViewing
		v.telegramInput.Blur()
		v.telegramInput.SetValue("")
		return v, v.updateTelegramCmd(username)
	}
	var cmd tea.Cmd
	v.telegramInput, cmd = v.telegramInput.Update(msg)
	return v, cmd
}

// updateDocs handles input while filling the submission form.
func (v *View) updateDocs(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.mode = modeViewing
		v.panInput.Blur()
		v.aadhaarInput.Blur()
		return v, nil
	case tea.KeyEnter, tea.KeyTab:
		if v.mode == modeDocsPan {
			v.mode = modeDocsAadhaar
			v.panInput.Blur()
			v.aadhaarInput.Focus()
			return v, textinput.Blink
		}
		if msg.Type == tea.KeyEnter {
			pan, aadhaar := v.panInput.Value(), v.aadhaarInput.Value()
			v.mode = modeViewing
			v.aadhaarInput.Blur()
			return v, v.submitDocumentsCmd(pan, aadhaar)
		}
		v.mode = modeDocsPan
		v.aadhaarInput.Blur()
		v.panInput.Focus()
		return v, textinput.Blink
	}

	var cmd tea.Cmd
	if v.mode == modeDocsPan {
		v.panInput, cmd = v.panInput.Update(msg)
	} else {
		v.aadhaarInput, cmd = v.aadhaarInput.Update(msg)
	}
	return v, cmd
}

// requestDocuments returns a command that triggers document collection.
func (v *View) requestDocuments() tea.Cmd {
	if v.candidates == nil || v.candidate == nil {
		return nil
	}
	id := v.candidate.ID
	return func() tea.Msg {
		msg, err := v.candidates.RequestDocuments(context.Background(), id)
		return messages.DocumentsRequested{Message: msg, Err: err}
	}
}

// updateTelegramCmd returns a command that links the telegram handle.
func (v *View) updateTelegramCmd(username string) tea.Cmd {
	if v.candidates == nil || v.candidate == nil {
		return nil
	}
	id := v.candidate.ID
	return func() tea.Msg {
		err := v.candidates.UpdateTelegram(context.Background(), id, username)
		return messages.TelegramUpdated{Err: err}
	}
}

// submitDocumentsCmd returns a command that submits both identity files.
func (v *View) submitDocumentsCmd(pan, aadhaar string) tea.Cmd {
	if v.documents == nil || v.candidate == nil {
		return nil
	}
	id := v.candidate.ID
	return func() tea.Msg {
		err := v.documents.Submit(context.Background(), id, pan, aadhaar)
		return messages.DocumentsSubmitted{Err: err}
	}
}

// View renders the profile.
func (v *View) View() string {
	if v.candidate == nil {
		return v.styles.Muted.Render("No candidate selected.")
	}
	c := v.candidate

	var b strings.Builder
	b.WriteString(v.styles.Avatar.Render(c.Initials()))
	b.WriteString("  ")
	b.WriteString(v.styles.Title.Render(c.DisplayName()))
	if c.Designation != "" {
		b.WriteString("\n   ")
		b.WriteString(v.styles.Muted.Render(c.Designation))
	}
	b.WriteString("\n\n")

	b.WriteString(v.renderDetail("Email", c.Email))
	b.WriteString(v.renderDetail("Phone", c.Phone))
	b.WriteString(v.renderDetail("Current Company", c.Company))
	b.WriteString(v.renderDetail("Confidence Score", fmt.Sprintf("%.1f%%", c.Confidence*100)))
	telegram := c.TelegramUsername
	if telegram == "" {
		telegram = "Not set"
	}
	b.WriteString(v.renderDetail("Telegram", telegram))
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Core Skills"))
	b.WriteString("\n")
	if len(c.Skills) == 0 {
		b.WriteString(v.styles.Muted.Render("No skills extracted yet"))
	} else {
		chips := make([]string, 0, len(c.Skills))
		for _, skill := range c.Skills {
			chips = append(chips, v.styles.SkillChip.Render(skill))
		}
		b.WriteString(strings.Join(chips, " "))
	}
	b.WriteString("\n\n")

	b.WriteString(v.renderDocuments())
	b.WriteString(v.renderInputs())

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[t] telegram  [g] request docs  [s] submit docs  [esc] back"))
	return b.String()
}

// renderDetail renders one label/value pair.
func (v *View) renderDetail(label, value string) string {
	return v.styles.Muted.Render(fmt.Sprintf("%-18s", label)) +
		v.styles.Normal.Render(value) + "\n"
}

// renderDocuments renders the submitted documents section.
func (v *View) renderDocuments() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Submitted Documents"))
	b.WriteString("\n")

	switch {
	case v.docsErr:
		b.WriteString(v.styles.Error.Render("Unable to fetch documents"))
	case len(v.docs) == 0:
		b.WriteString(v.styles.Muted.Render("No documents submitted"))
	default:
		for _, d := range v.docs {
			mark := ""
			if d.Status == domain.DocumentCollected {
				mark = " ✓"
			}
			b.WriteString(v.styles.Normal.Render(
				fmt.Sprintf("%s: %s%s", strings.ToUpper(string(d.Type)), d.Status, mark)))
			b.WriteString("\n")
			// Collected files are stored server-side; the URL may be
			// relative and must be resolved before display.
			if d.Status == domain.DocumentCollected && d.FileURL != "" && v.documents != nil {
				b.WriteString(v.styles.Muted.Render("     " + v.documents.ResolveFileURL(d.FileURL)))
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}

// renderInputs renders whichever input form is active.
func (v *View) renderInputs() string {
	switch v.mode {
	case modeTelegram:
		return v.styles.InputField.Render(v.telegramInput.View()) + "\n"
	case modeDocsPan, modeDocsAadhaar:
		return v.styles.InputField.Render("PAN:     "+v.panInput.View()) + "\n" +
			v.styles.InputField.Render("Aadhaar: "+v.aadhaarInput.View()) + "\n"
	}
	return ""
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
