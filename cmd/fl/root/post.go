package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forestlog/internal/engine"
	"forestlog/internal/ui"
)

func newPostCmd() *cobra.Command {
	var effort string

	cmd := &cobra.Command{
		Use:   "post <task>",
		Short: "Log an accomplishment",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("task description is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.ParseEffort(effort)
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}

			res, err := svc.PostTask(strings.Join(args, " "), e)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				res.Entry.Tree,
				ui.Good.Render("Planted!"),
				ui.Points(res.Points))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeLevel,
					ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
			}
			if res.StreakExtended {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconFlame,
					ui.LabelValue("Streak", fmt.Sprintf("%d days", res.Streak)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&effort, "effort", "e", "sapling", "Effort level (seed|sapling|oak)")

	return cmd
}
