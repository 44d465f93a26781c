package cmd

import (
	"fmt"
	"io"

	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/mj1618/macos-computer/internal/output"
	"github.com/spf13/cobra"
)

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Execute multiple actions in a batch",
	Long: `Execute a sequence of actions from a YAML list on stdin.

Each step is an action name with its arguments as a map. Steps execute
sequentially against one adapter instance, and by default execution stops on
the first error.

Example:
  macos-computer do <<'EOF'
  - focus_application: { app: "TextEdit" }
  - keypress: { keys: [cmd, n] }
  - type: { text: "Hello" }
  - drag: { path: "100,100 300,300" }
  - screenshot:
  EOF`,
	Args: cobra.NoArgs,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
}

func runDo(cmd *cobra.Command, args []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	steps, err := actions.ParseSteps(data)
	if err != nil {
		return err
	}

	c, cleanup, err := computerFactory()
	if err != nil {
		return err
	}
	defer cleanup()

	batch := actions.RunBatch(cmd.Context(), c, steps, stopOnError)
	if err := output.Print(batch); err != nil {
		return err
	}
	if !batch.OK {
		return fmt.Errorf("batch failed: %d of %d steps completed", batch.Completed, batch.Steps)
	}
	return nil
}
