package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Print the full session record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := globalUC.Get(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(sess, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode session: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
