package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forestlog/internal/engine"
	"forestlog/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show points, level, streak and today's growth",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			p := svc.Profile()
			level := svc.Level()
			floor := engine.PointsForLevel(level)
			next := engine.PointsForLevel(level + 1)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconForest, "Forest Log"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", p.TotalPoints))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", fmt.Sprintf("%d %s %s",
				level,
				progressBar(p.TotalPoints-floor, next-floor, 20),
				ui.Muted.Render(fmt.Sprintf("(next at %d)", next)))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%d days %s", p.Streak, ui.IconFlame)))
			if nextTier := engine.NextTierLevel(level); nextTier > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Next rare tree tier unlocks at level %d", nextTier)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconLeaf+" Today's Growth"))
			today := svc.TodayEntries()
			if len(today) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No growth recorded yet today."))
				return nil
			}
			var trees []string
			for _, e := range today {
				trees = append(trees, e.Tree)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(trees, " "))
			return nil
		},
	}

	return cmd
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
