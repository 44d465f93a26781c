package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mj1618/macos-computer/internal/output"
	"github.com/mj1618/macos-computer/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// configErr is recorded by initConfig and reported once a command runs.
var configErr error

var rootCmd = &cobra.Command{
	Use:   "macos-computer",
	Short: "Drive the macOS desktop on a fixed 1366x768 canvas",
	Long: `A computer-use adapter for macOS. Every command takes coordinates on a
1366x768 logical canvas and scales them to the physical screen, so agents can
work from screenshots without knowing the display resolution.

Results are printed to stdout as YAML (default) or JSON; logs go to stderr.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.macos-computer.yaml)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		if err := bindFlags(cmd); err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = cmd.Flags().GetBool("pretty")
		return nil
	}
}

func initConfig() {
	configErr = nil
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}

		// Search config in home directory with name ".macos-computer" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".macos-computer")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return
		}
		configErr = fmt.Errorf("read config file: %w", err)
	}
}

// bindFlags fills flags the user did not set from the config file. Explicit
// flags keep priority. Keys may be written with or without hyphens.
func bindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || bindErr != nil {
			return
		}
		for _, key := range []string{f.Name, strings.ReplaceAll(f.Name, "-", "")} {
			if !viper.IsSet(key) {
				continue
			}
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(key))); err != nil {
				bindErr = fmt.Errorf("config value for %s: %w", f.Name, err)
			}
			return
		}
	})
	return bindErr
}
