package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/planvet/planvet/internal/usecase/review"
)

func newLatestPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest-plan <session-id>",
		Short: "Print the most recently submitted plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := globalUC.LatestPlan(args[0])
			if err != nil {
				return err
			}
			if result.Outcome == review.OutcomePending {
				fmt.Println(result.Reason)
				return nil
			}
			fmt.Printf("Plan version %d (submitted %s)\n",
				result.Plan.Version, result.Plan.SubmittedAt.Format(time.RFC3339))
			fmt.Println(result.Plan.Content)
			return nil
		},
	}
}

func newLatestFeedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest-feedback <session-id>",
		Short: "Print the most recent feedback on the current plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := globalUC.LatestFeedback(args[0])
			if err != nil {
				return err
			}
			if result.Outcome == review.OutcomePending {
				fmt.Println(result.Reason)
				return nil
			}
			fb := result.Feedback
			label := string(fb.Rating)
			if fb.Override {
				label += " (override)"
			}
			fmt.Printf("Feedback on plan version %d: %s (submitted %s)\n",
				fb.PlanVersion, label, fb.SubmittedAt.Format(time.RFC3339))
			fmt.Println(fb.Content)
			return nil
		},
	}
}
