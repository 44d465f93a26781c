package cmd

import (
	"github.com/mj1618/macos-computer/internal/bootstrap"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the computer-use tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes every
computer-use action as a tool. Tool calls are serialized against one adapter
instance.

Supported transports:
  stdio             Standard I/O (default, for local MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Flags override MCP_TRANSPORT and MCP_PORT.

Examples:
  macos-computer serve
  macos-computer serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http (default from MCP_TRANSPORT)")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http (default from MCP_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	app := bootstrap.NewServerApp(bootstrap.ServeOverrides{
		Transport: transport,
		Port:      port,
	})
	if err := app.Err(); err != nil {
		return err
	}

	app.Run()
	return nil
}
