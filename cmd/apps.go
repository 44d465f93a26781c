package cmd

import (
	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:     "apps",
	Aliases: []string{"list"},
	Short:   "List running applications",
	Long:    "List the names of running processes, sorted and de-duplicated. Processes that exit mid-scan are skipped.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.GetRunningApplications, actions.Params{})
	},
}

var activeWindowCmd = &cobra.Command{
	Use:   "active-window",
	Short: "Report the frontmost application's name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.GetActiveWindowTitle, actions.Params{})
	},
}

func init() {
	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(activeWindowCmd)
}
