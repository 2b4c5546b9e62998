package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planvet/planvet/internal/usecase/review"
)

func newPlanCmd() *cobra.Command {
	var content string
	var contentFile string

	cmd := &cobra.Command{
		Use:   "plan <session-id>",
		Short: "Submit the next plan version for review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentFile != "" {
				data, err := os.ReadFile(contentFile)
				if err != nil {
					return fmt.Errorf("failed to read plan file: %w", err)
				}
				content = string(data)
			}
			result, err := globalUC.SubmitPlan(review.SubmitPlanInput{
				SessionID: args[0],
				Content:   content,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Submitted plan version %d (status: %s)\n", result.Version, result.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "plan text")
	cmd.Flags().StringVarP(&contentFile, "file", "f", "", "read plan text from a file instead")
	return cmd
}
