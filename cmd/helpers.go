package cmd

import (
	"context"

	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/mj1618/macos-computer/internal/bootstrap"
	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/internal/config"
	"github.com/mj1618/macos-computer/internal/output"
	"github.com/spf13/cobra"
)

// computerFactory opens the adapter for a single command. Tests replace it
// with one built over fake backends.
var computerFactory = openComputer

// openComputer builds the adapter from the environment. The returned cleanup
// flushes traces and logs.
func openComputer() (*computer.Computer, func(), error) {
	conf, err := config.GetConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := bootstrap.NewLogger(conf)
	if err != nil {
		return nil, nil, err
	}
	tp, shutdown, err := bootstrap.NewTracerProvider(conf, logger)
	if err != nil {
		return nil, nil, err
	}

	c, err := bootstrap.NewComputer(conf, logger, tp.Tracer("macos-computer"))
	cleanup := func() {
		_ = shutdown(context.Background())
		_ = logger.Sync()
	}
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return c, cleanup, nil
}

// runAction executes one action and prints its result. A failed action is
// still printed (ok: false) before the error is returned for the exit code.
func runAction(cmd *cobra.Command, action string, params actions.Params) error {
	result, err := executeAction(cmd, action, params)
	if printErr := output.Print(result); printErr != nil {
		return printErr
	}
	return err
}

func executeAction(cmd *cobra.Command, action string, params actions.Params) (actions.Result, error) {
	c, cleanup, err := computerFactory()
	if err != nil {
		return actions.Result{Action: action}, err
	}
	defer cleanup()

	return actions.Execute(cmd.Context(), c, action, params)
}

// addPointFlags registers --x and --y on the logical canvas.
func addPointFlags(cmd *cobra.Command, what string) {
	cmd.Flags().Int("x", 0, "Logical X coordinate "+what+" (0-1366)")
	cmd.Flags().Int("y", 0, "Logical Y coordinate "+what+" (0-768)")
}

// pointParams copies --x/--y into params when they were given, leaving
// presence checks to the action.
func pointParams(cmd *cobra.Command, params actions.Params) actions.Params {
	for _, name := range []string{"x", "y"} {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetInt(name)
			params[name] = v
		}
	}
	return params
}
