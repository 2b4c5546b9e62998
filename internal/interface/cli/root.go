// Package cli wires the review operations to a cobra command tree. It is a
// thin adapter: every command parses flags, calls one use case operation,
// and prints the structured result.
package cli

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/planvet/planvet/internal/app/config"
	"github.com/planvet/planvet/internal/infra/persistence/file"
	"github.com/planvet/planvet/internal/interface/cli/common"
	"github.com/planvet/planvet/internal/usecase/review"
)

var (
	globalConfig *config.AppConfig
	globalLogger *common.Logger
	globalUC     *review.UseCase
)

// NewRoot builds the planvet command tree.
func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "planvet",
		Short:         "Coordinate plan review sessions between agents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			globalConfig = cfg
			globalLogger = common.NewLogger(os.Stderr, common.ParseLogLevel(cfg.StderrLevel()))
			repo := file.NewSessionRepository(afero.NewOsFs(), cfg.Home(), globalLogger)
			globalUC = review.NewUseCase(repo)
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newFeedbackCmd())
	cmd.AddCommand(newApproveCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newLatestPlanCmd())
	cmd.AddCommand(newLatestFeedbackCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newHomeCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
