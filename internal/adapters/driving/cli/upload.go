package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a resume for extraction",
	Long: `Uploads a resume (.pdf or .docx) and waits for extraction.
Progress is printed as the transfer runs; the server's per-stage
outcomes are printed once extraction finishes.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if services == nil || services.Upload == nil {
		return errors.New("upload service not configured")
	}
	path := args[0]

	cmd.Printf("Uploading %s...\n", path)
	last := -1
	outcome, err := services.Upload.Upload(context.Background(), path, func(percent int) {
		if percent == last {
			return
		}
		last = percent
		cmd.Printf("\r  %3d%%", percent)
	})
	cmd.Println()
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	for _, msg := range outcome.StageMessages {
		cmd.Printf("  ✓ %s\n", msg)
	}
	cmd.Printf("\nCandidate %s created (confidence %.1f%%).\n",
		outcome.CandidateID, outcome.Confidence*100)
	return nil
}
