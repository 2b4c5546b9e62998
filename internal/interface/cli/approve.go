package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planvet/planvet/internal/usecase/review"
)

func newApproveCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "approve <session-id>",
		Short: "Force-approve an exhausted session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := globalUC.ForceApprove(review.ForceApproveInput{
				SessionID: args[0],
				Reason:    reason,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Session approved by override (status: %s)\n", result.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "justification recorded with the override")
	return cmd
}
