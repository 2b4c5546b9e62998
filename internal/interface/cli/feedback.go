package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planvet/planvet/internal/usecase/review"
)

func newFeedbackCmd() *cobra.Command {
	var rating string
	var content string
	var planVersion int

	cmd := &cobra.Command{
		Use:   "feedback <session-id>",
		Short: "Submit feedback on the latest plan",
		Long: `Submit feedback on the latest plan.

Pass --plan-version with the version you reviewed to reject stale feedback
when a newer plan was submitted concurrently. Without it the feedback
applies to whichever plan is currently latest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := review.SubmitFeedbackInput{
				SessionID: args[0],
				Rating:    rating,
				Content:   content,
			}
			if cmd.Flags().Changed("plan-version") {
				input.ExpectedPlanVersion = &planVersion
			}
			result, err := globalUC.SubmitFeedback(input)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded %s feedback (status: %s, iteration: %d)\n", rating, result.Status, result.Iteration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rating, "rating", "r", "", "verdict: major, minor, or approve")
	cmd.Flags().StringVarP(&content, "content", "c", "", "feedback text")
	cmd.Flags().IntVar(&planVersion, "plan-version", 0, "plan version this feedback targets")
	return cmd
}
