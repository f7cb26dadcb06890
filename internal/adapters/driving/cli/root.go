// Package cli provides the cobra command tree for traqcheck.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driving"
	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// Services holds the driving services the commands run against.
type Services struct {
	// Candidate exposes candidate reads and the destructive delete.
	Candidate driving.CandidateService

	// Document exposes identity-document reads and submission.
	Document driving.DocumentService

	// Upload drives resume uploads.
	Upload driving.UploadService

	// Drops optionally delivers resume paths from the drop watcher.
	Drops <-chan string
}

// Builder constructs the services for a resolved API base URL. An empty
// apiBase means the configured default.
type Builder func(apiBase string) (*Services, error)

var (
	version = "dev"
	verbose bool
	apiBase string

	builder  Builder
	services *Services
)

// rootCmd is the base command. Running it bare launches the TUI.
var rootCmd = &cobra.Command{
	Use:   "traqcheck",
	Short: "Track resume extraction candidates from the terminal",
	Long: `traqcheck is a terminal client for the TraqCheck recruiter service.

It keeps a live view of extracted candidates, uploads resumes, collects
identity documents and links Telegram handles, all from the keyboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if !needsServices(cmd) || services != nil {
			return nil
		}
		if builder == nil {
			return errors.New("services not configured")
		}
		s, err := builder(apiBase)
		if err != nil {
			return err
		}
		services = s
		return nil
	},
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiBase, "api-base", "", "override the API base URL")
}

// needsServices reports whether the command talks to the API. Version,
// help and the config tree run without a backend.
func needsServices(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", "config":
			return false
		}
	}
	return true
}

// SetBuilder installs the service builder used on first command run.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices installs pre-built services, bypassing the builder. Used
// by tests and by callers that already wired everything.
func SetServices(s *Services) {
	services = s
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
