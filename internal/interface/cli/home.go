package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Print the resolved session storage directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Storage root:  %s\n", globalConfig.Home())
			fmt.Printf("Config source: %s\n", globalConfig.ConfigSource())
			if path := globalConfig.SettingPath(); path != "" {
				fmt.Printf("Setting file:  %s\n", path)
			}
			return nil
		},
	}
}
