package cmd

import (
	"fmt"
	"io"

	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/spf13/cobra"
)

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Type text literally",
	Long: `Type text at the current focus, one keystroke per character.

Text comes from the argument, --text, or stdin with --stdin. Stdin is typed
exactly as read, including any trailing newline.

Examples:
  macos-computer type "hello world"
  echo -n "from a pipe" | macos-computer type --stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runType,
}

var keyCmd = &cobra.Command{
	Use:   "key <keys...>",
	Short: "Tap each key in order, one at a time",
	Long: `Tap each key independently. Names are passed to the input backend
unchanged; use keypress for aliases such as cmd or esc.

Example:
  macos-computer key tab tab enter`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, actions.Key, actions.Params{"keys": args})
	},
}

var keypressCmd = &cobra.Command{
	Use:   "keypress [keys...]",
	Short: "Press keys together as a chord",
	Long: `Press keys as one chord after alias mapping (cmd->command, alt->option,
esc->escape, return->enter). A single key is a plain tap.

Examples:
  macos-computer keypress cmd c
  macos-computer keypress --combo cmd+shift+t`,
	RunE: runKeypress,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type")
	typeCmd.Flags().Bool("stdin", false, "Read the text from stdin")

	rootCmd.AddCommand(keyCmd)

	rootCmd.AddCommand(keypressCmd)
	keypressCmd.Flags().String("combo", "", "Key combination, e.g. cmd+c")
}

func runType(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	fromStdin, _ := cmd.Flags().GetBool("stdin")

	switch {
	case len(args) == 1 && text != "":
		return fmt.Errorf("give the text either as an argument or with --text, not both")
	case len(args) == 1:
		text = args[0]
	case fromStdin:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	return runAction(cmd, actions.Type, actions.Params{"text": text})
}

func runKeypress(cmd *cobra.Command, args []string) error {
	combo, _ := cmd.Flags().GetString("combo")
	return runAction(cmd, actions.Keypress, actions.Params{"keys": args, "combo": combo})
}
