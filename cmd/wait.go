package cmd

import (
	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/spf13/cobra"
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Sleep for a number of milliseconds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, _ := cmd.Flags().GetInt("ms")
		return runAction(cmd, actions.Wait, actions.Params{"ms": ms})
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().Int("ms", 1000, "Milliseconds to wait")
}
