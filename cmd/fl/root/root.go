package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"forestlog/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "fl",
	Short:         "Forest Log — plant a tree for every win",
	Long:          "Forest Log is a local-first habit log: free-text accomplishments earn points, grow a daily streak, and unlock rarer trees as you level up.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newPostCmd(),
		newStatusCmd(),
		newLogCmd(),
		newWeekCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
