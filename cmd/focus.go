package cmd

import (
	"fmt"

	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/mj1618/macos-computer/internal/output"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Bring an application to the front",
	Long: `Activate an application by name through AppleScript.

Example:
  macos-computer focus --app Safari`,
	Args: cobra.NoArgs,
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().String("app", "", "Application name")
}

func runFocus(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	if app == "" {
		return fmt.Errorf("--app is required")
	}

	result, err := executeAction(cmd, actions.FocusApplication, actions.Params{"app": app})
	if printErr := output.Print(result); printErr != nil {
		return printErr
	}
	if err != nil {
		return err
	}
	if result.Focused != nil && !*result.Focused {
		return fmt.Errorf("could not focus %q: %s", app, result.Reason)
	}
	return nil
}
