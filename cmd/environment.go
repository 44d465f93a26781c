package cmd

import (
	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/spf13/cobra"
)

var environmentCmd = &cobra.Command{
	Use:   "environment",
	Short: "Report the kind of machine being controlled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.GetEnvironment, actions.Params{})
	},
}

var dimensionsCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "Report the physical screen size in pixels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.GetDimensions, actions.Params{})
	},
}

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Report the current URL (always empty for native desktop control)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.GetCurrentURL, actions.Params{})
	},
}

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Report the pointer position on the logical canvas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.CursorPosition, actions.Params{})
	},
}

func init() {
	rootCmd.AddCommand(environmentCmd)
	rootCmd.AddCommand(dimensionsCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(cursorCmd)
}
