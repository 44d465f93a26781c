package cmd

import (
	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/spf13/cobra"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Check the accessibility permission needed for input injection",
	Long: `Report whether this process may synthesize input events. When it may
not, the output lists the steps to grant Accessibility access in System
Settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.CheckPermissions, actions.Params{})
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
}
