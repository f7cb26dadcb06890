package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui"
	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// dashboardCmd launches the interactive terminal UI explicitly; running
// the bare root command does the same.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive candidate dashboard",
	Long: `Launch the interactive terminal user interface for traqcheck.

The dashboard keeps the candidate list in sync with the server, shows
extraction results and drives uploads, document collection and deletes.

Controls:
  ↑/k, ↓/j - Navigate candidates
  Enter    - Open candidate profile
  u        - Upload a resume
  d        - Delete the highlighted candidate
  r        - Refresh now
  ?        - Help
  q        - Quit`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	// Panic recovery so terminal state is followed by a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if services == nil {
		return errors.New("services not configured")
	}

	// Stderr belongs to the renderer once the alt screen is up; verbose
	// output goes to a file next to the config instead.
	restore := redirectLogs()
	defer restore()

	ports := tui.NewPorts(services.Candidate, services.Document, services.Upload)
	ports.Drops = services.Drops

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs sends verbose output to debug.log in the config
// directory for the duration of the TUI session. Returns the restore
// func; on any failure logging stays on stderr.
func redirectLogs() func() {
	if configStore == nil {
		return func() {}
	}
	path := filepath.Join(filepath.Dir(configStore.Path()), "debug.log")
	if err := logger.SetOutputFile(path); err != nil {
		logger.Warn("log redirect to %s failed: %v", path, err)
		return func() {}
	}
	return logger.Close
}
