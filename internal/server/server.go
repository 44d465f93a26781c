// Package server exposes the computer-use actions as MCP tools.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/pkg/logg"
	"go.uber.org/zap"
)

const (
	serverName = "macos-computer"

	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// Server wraps the MCP server around a single Computer. Tool calls are
// serialized because the Computer requires a single caller at a time.
type Server struct {
	computer *computer.Computer
	logger   *zap.Logger

	mu    sync.Mutex
	mcp   *mcpserver.MCPServer
	http  *mcpserver.StreamableHTTPServer
	tools []string
}

// New creates an MCP server with every computer-use tool registered.
func New(c *computer.Computer, logger *zap.Logger, version string) *Server {
	s := &Server{
		computer: c,
		logger:   logger.With(zap.String(logg.Layer, "MCPServer"), zap.String(logg.Session, c.Session())),
	}

	s.mcp = mcpserver.NewMCPServer(
		serverName,
		version,
		mcpserver.WithToolCapabilities(false),
	)
	s.http = mcpserver.NewStreamableHTTPServer(s.mcp)

	s.registerTools()
	return s
}

// Tools lists the registered tool names in registration order.
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

// Serve blocks serving the given transport.
func (s *Server) Serve(transport string, port int) error {
	logger := s.logger.With(zap.String(logg.Transport, transport))

	switch transport {
	case TransportStdio:
		logger.Info("Serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case TransportStreamableHTTP:
		addr := fmt.Sprintf(":%d", port)
		logger.Info("Serving MCP over streamable HTTP", zap.String("addr", addr))
		if err := s.http.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

// Shutdown stops the HTTP transport. Stdio stops when its input closes.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) addTool(tool mcp.Tool, handler mcpserver.ToolHandlerFunc) {
	s.mcp.AddTool(tool, handler)
	s.tools = append(s.tools, tool.Name)
}
