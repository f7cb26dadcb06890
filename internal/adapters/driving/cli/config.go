package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driven/config/file"
)

// configStore is injected from main so commands and the TUI share one
// config file.
var configStore *file.ConfigStore

// SetConfigStore installs the configuration store.
func SetConfigStore(store *file.ConfigStore) {
	configStore = store
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		if err := configStore.Load(); err != nil {
			return err
		}
		cfg := configStore.Config()
		cmd.Printf("config file: %s\n", configStore.Path())
		cmd.Printf("api_base_url: %s\n", cfg.APIBaseURL)
		cmd.Printf("drop_dir:     %s\n", cfg.DropDir)
		cmd.Printf("verbose:      %t\n", cfg.Verbose)
		return nil
	},
}

var configSetAPIBaseCmd = &cobra.Command{
	Use:   "set-api-base [url]",
	Short: "Set the API base URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		if err := configStore.SetAPIBaseURL(args[0]); err != nil {
			return err
		}
		cmd.Printf("API base set to %s\n", args[0])
		return nil
	},
}

var configSetDropDirCmd = &cobra.Command{
	Use:   "set-drop-dir [dir]",
	Short: "Set the watched resume drop directory",
	Long: `Sets the directory watched for new resumes. Any .pdf or .docx
file created there while the dashboard runs is uploaded automatically.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		if err := configStore.SetDropDir(args[0]); err != nil {
			return err
		}
		cmd.Printf("Drop directory set to %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetAPIBaseCmd)
	configCmd.AddCommand(configSetDropDirCmd)
	rootCmd.AddCommand(configCmd)
}
