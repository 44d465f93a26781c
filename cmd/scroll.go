package cmd

import (
	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/spf13/cobra"
)

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll by deltas at a point, or towards a direction",
	Long: `Scroll in one of two forms.

Delta form: positive --scroll-y scrolls up, positive --scroll-x scrolls right.
  macos-computer scroll --x 683 --y 384 --scroll-y -5

Direction form: --amount steps (default 3), optionally at --x/--y.
  macos-computer scroll --direction down
  macos-computer scroll --direction left --amount 10 --x 200 --y 300`,
	Args: cobra.NoArgs,
	RunE: runScroll,
}

func init() {
	rootCmd.AddCommand(scrollCmd)
	addPointFlags(scrollCmd, "to scroll at")
	scrollCmd.Flags().Int("scroll-x", 0, "Horizontal delta (positive scrolls right)")
	scrollCmd.Flags().Int("scroll-y", 0, "Vertical delta (positive scrolls up)")
	scrollCmd.Flags().String("direction", "", "Scroll direction: up, down, left, right")
	scrollCmd.Flags().Int("amount", 3, "Scroll steps for --direction")
}

func runScroll(cmd *cobra.Command, args []string) error {
	params := pointParams(cmd, actions.Params{})

	direction, _ := cmd.Flags().GetString("direction")
	if direction != "" {
		amount, _ := cmd.Flags().GetInt("amount")
		params["direction"] = direction
		params["amount"] = amount
	} else {
		scrollX, _ := cmd.Flags().GetInt("scroll-x")
		scrollY, _ := cmd.Flags().GetInt("scroll-y")
		params["scroll_x"] = scrollX
		params["scroll_y"] = scrollY
	}

	return runAction(cmd, actions.Scroll, params)
}
