package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forestlog/internal/ui"
)

func newWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly momentum chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, "Weekly Momentum"))
			series := svc.WeeklySeries()

			max := 0
			for _, dp := range series {
				if dp.Points > max {
					max = dp.Points
				}
			}
			if max == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Log a task to start tracking your weekly momentum."))
				return nil
			}
			for _, dp := range series {
				width := dp.Points * 30 / max
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Key.Render(dp.Date.ShortDayName()),
					ui.Bar.Render(strings.Repeat("█", width)),
					ui.Muted.Render(fmt.Sprintf("%d", dp.Points)))
			}
			return nil
		},
	}

	return cmd
}
