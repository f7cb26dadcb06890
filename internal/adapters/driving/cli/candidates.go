package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

var candidatesJSON bool

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List extracted candidates",
	Long: `Fetches the candidate list from the server and prints it.
Use --json for machine-readable output.`,
	RunE: runCandidates,
}

func init() {
	candidatesCmd.Flags().BoolVar(&candidatesJSON, "json", false, "output candidates as JSON")
	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Candidate == nil {
		return errors.New("candidate service not configured")
	}

	list, err := services.Candidate.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing candidates failed: %w", err)
	}

	if candidatesJSON {
		return outputCandidatesJSON(cmd, list)
	}
	return outputCandidatesTable(cmd, list)
}

func outputCandidatesJSON(cmd *cobra.Command, list []domain.Candidate) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal candidates: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputCandidatesTable(cmd *cobra.Command, list []domain.Candidate) error {
	if len(list) == 0 {
		cmd.Println("No candidates found.")
		return nil
	}

	cmd.Printf("%d candidates:\n\n", len(list))
	for i := range list {
		c := &list[i]
		cmd.Printf("  [%s] %s (%s)\n", c.ID, c.DisplayName(), c.ExtractionStatus)
		if c.Email != "" {
			cmd.Printf("      %s\n", c.Email)
		}
		if c.Company != "" {
			cmd.Printf("      %s - %s\n", c.Company, c.Designation)
		}
		cmd.Println()
	}
	return nil
}
