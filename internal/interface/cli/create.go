package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	model "github.com/planvet/planvet/internal/domain/model/session"
	"github.com/planvet/planvet/internal/usecase/review"
)

func newCreateCmd() *cobra.Command {
	var maxIterations int

	cmd := &cobra.Command{
		Use:   "create <goal>",
		Short: "Start a new plan review session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := globalUC.Create(review.CreateInput{
				Goal:          args[0],
				MaxIterations: maxIterations,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created session %s\n", sess.ID)
			fmt.Printf("  Goal:           %s\n", sess.Goal)
			fmt.Printf("  Status:         %s\n", sess.Status)
			fmt.Printf("  Max iterations: %d\n", sess.MaxIterations)
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxIterations, "max-iterations", "m", model.DefaultMaxIterations,
		"review rounds allowed before the session is exhausted")
	return cmd
}
