package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/planvet/planvet/internal/usecase/review"
)

func newRemoveCmd() *cobra.Command {
	var force bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <session-id>",
		Short: "Delete a session permanently",
		Long: `Delete a session permanently.

Sessions that are not approved or exhausted are protected; pass --force to
delete them anyway.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Delete session %s", args[0]),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					fmt.Println("Aborted")
					return nil
				}
			}
			deleted, err := globalUC.Delete(review.DeleteInput{
				SessionID: args[0],
				Force:     force,
			})
			if err != nil {
				return err
			}
			if deleted {
				fmt.Printf("Deleted session %s\n", args[0])
			} else {
				fmt.Printf("Session %s was already gone\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "delete even if the session is not approved or exhausted")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
