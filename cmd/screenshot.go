package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/internal/output"
	"github.com/spf13/cobra"
)

// ScreenshotResult is the output of `screenshot --output`.
type ScreenshotResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	File   string `yaml:"file"   json:"file"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
	Bytes  int    `yaml:"bytes"  json:"bytes"`
}

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture the screen as a 1366x768 PNG",
	Long: `Capture the screen resampled to the 1366x768 logical canvas.

Without --output the PNG is printed as a base64 data URL.

Examples:
  macos-computer screenshot --output screen.png
  macos-computer screenshot --format json | jq -r .image`,
	Args: cobra.NoArgs,
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().StringP("output", "o", "", "Write the PNG to this file instead of printing a data URL")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		return runAction(cmd, actions.Screenshot, actions.Params{})
	}

	result, err := executeAction(cmd, actions.Screenshot, actions.Params{})
	if err != nil {
		_ = output.Print(result)
		return err
	}

	data, err := computer.DecodeDataURL(result.Image)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}

	return output.Print(ScreenshotResult{
		OK:     true,
		Action: actions.Screenshot,
		File:   outPath,
		Width:  result.Width,
		Height: result.Height,
		Bytes:  len(data),
	})
}
