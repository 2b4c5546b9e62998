package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	model "github.com/planvet/planvet/internal/domain/model/session"
	"github.com/planvet/planvet/internal/usecase/review"
)

var statusColors = map[model.Status]*color.Color{
	model.StatusDrafting:        color.New(color.FgCyan),
	model.StatusPendingReview:   color.New(color.FgYellow),
	model.StatusPendingRevision: color.New(color.FgMagenta),
	model.StatusApproved:        color.New(color.FgGreen),
	model.StatusExhausted:       color.New(color.FgRed),
}

func newListCmd() *cobra.Command {
	var statuses []string
	var sortKey string
	var order string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := make([]model.Status, 0, len(statuses))
			for _, s := range statuses {
				filter = append(filter, model.Status(s))
			}
			summaries, err := globalUC.List(review.ListInput{
				Statuses: filter,
				SortKey:  review.SortKey(sortKey),
				Order:    review.SortOrder(order),
			})
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No sessions")
				return nil
			}
			for _, s := range summaries {
				statusLabel := s.Status.String()
				if c, ok := statusColors[s.Status]; ok {
					statusLabel = c.Sprint(statusLabel)
				}
				fmt.Printf("%s  %-16s  v%d  iter %d/%d  %s  %s\n",
					s.ID, statusLabel, s.Version, s.Iteration, s.MaxIterations,
					s.UpdatedAt.Local().Format(time.DateTime), s.Goal)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&statuses, "status", "s", nil,
		"filter by status (repeatable or comma separated)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key: createdAt or updatedAt (default updatedAt)")
	cmd.Flags().StringVar(&order, "order", "", "sort order: asc or desc (default desc)")
	return cmd
}
