package cmd

import (
	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/spf13/cobra"
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag with the left button along a path",
	Long: `Press the left button at the first point, move through the remaining
points and release. Points are logical coordinates separated by spaces or
semicolons. The button is always released, even when a move fails.

Example:
  macos-computer drag --path "100,100 400,100 400,300"`,
	Args: cobra.NoArgs,
	RunE: runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	dragCmd.Flags().String("path", "", `Points as "x,y x,y ..." (at least two)`)
}

func runDrag(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	return runAction(cmd, actions.Drag, actions.Params{"path": path})
}
