package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/internal/output"
	"github.com/mj1618/macos-computer/internal/platform/platformtest"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// useFakeComputer routes every command to a Computer over fakes for a
// 2732x1536 screen, so logical coordinates double on the way out.
func useFakeComputer(t *testing.T) *platformtest.Backends {
	t.Helper()
	fakes, provider := platformtest.New(2732, 1536)
	c, err := computer.New(provider,
		computer.WithPause(0),
		computer.WithDragStepDelay(0),
		computer.WithScriptTimeout(20*time.Millisecond),
		computer.WithSleep(func(time.Duration) {}))
	require.NoError(t, err)

	old := computerFactory
	computerFactory = func() (*computer.Computer, func(), error) {
		return c, func() {}, nil
	}
	t.Cleanup(func() { computerFactory = old })
	return fakes
}

// run executes the root command with args and returns what was printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	oldWriter, oldFormat, oldPretty := output.Writer, output.OutputFormat, output.PrettyOutput
	output.Writer = &buf
	t.Cleanup(func() {
		output.Writer, output.OutputFormat, output.PrettyOutput = oldWriter, oldFormat, oldPretty
		rootCmd.SetIn(nil)
		rootCmd.SetErr(nil)
		viper.Reset()
	})

	resetFlags(rootCmd)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores defaults because cobra commands are package globals
// and keep parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
