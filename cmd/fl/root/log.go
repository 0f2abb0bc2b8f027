package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"forestlog/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the full archive, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "The Chronicles"))
			entries := svc.Archive()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Your history is currently a blank page."))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", e.Tree, ui.Key.Render(e.Task), ui.Points(e.Points))
				fmt.Fprintln(cmd.OutOrStdout(), "   "+ui.Muted.Render(fmt.Sprintf("%s, %s • %s", e.DayName, e.Date, e.Effort)))
			}
			return nil
		},
	}

	return cmd
}
