// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens the highlighted candidate's profile.
	Select key.Binding

	// Refresh forces a non-silent candidate list refresh.
	Refresh key.Binding

	// Upload opens the resume upload view.
	Upload key.Binding

	// Delete asks to delete the highlighted candidate.
	Delete key.Binding

	// Confirm approves the pending delete.
	Confirm key.Binding

	// Cancel abandons the pending delete or an input.
	Cancel key.Binding

	// Telegram edits the telegram username on the profile.
	Telegram key.Binding

	// RequestDocs triggers identity-document collection.
	RequestDocs key.Binding

	// SubmitDocs opens the document submission form.
	SubmitDocs key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "profile"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete", "backspace"),
			key.WithHelp("d", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
		Telegram: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "telegram"),
		),
		RequestDocs: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "request docs"),
		),
		SubmitDocs: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit docs"),
		),
	}
}

// DashboardHelp returns the bindings shown on the dashboard.
func (k *KeyMap) DashboardHelp() []key.Binding {
	return []key.Binding{k.Select, k.Upload, k.Delete, k.Refresh, k.Help, k.Quit}
}

// ProfileHelp returns the bindings shown on the profile view.
func (k *KeyMap) ProfileHelp() []key.Binding {
	return []key.Binding{k.Telegram, k.RequestDocs, k.SubmitDocs, k.Back}
}
