package cmd

import (
	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at logical coordinates",
	Long: `Click at a point on the 1366x768 logical canvas.

Examples:
  macos-computer click --x 683 --y 384
  macos-computer click --x 100 --y 200 --button right
  macos-computer click --x 100 --y 200 --double`,
	Args: cobra.NoArgs,
	RunE: runClick,
}

var doubleClickCmd = &cobra.Command{
	Use:   "double-click",
	Short: "Double-click the left button at logical coordinates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.DoubleClick, pointParams(cmd, actions.Params{}))
	},
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move the pointer to logical coordinates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.Move, pointParams(cmd, actions.Params{}))
	},
}

func init() {
	rootCmd.AddCommand(clickCmd)
	addPointFlags(clickCmd, "to click")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")

	rootCmd.AddCommand(doubleClickCmd)
	addPointFlags(doubleClickCmd, "to double-click")

	rootCmd.AddCommand(moveCmd)
	addPointFlags(moveCmd, "to move to")
}

func runClick(cmd *cobra.Command, args []string) error {
	button, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")

	return runAction(cmd, actions.Click, pointParams(cmd, actions.Params{
		"button": button,
		"double": double,
	}))
}
