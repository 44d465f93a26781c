package bootstrap

import (
	"context"
	"time"

	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/internal/config"
	"github.com/mj1618/macos-computer/internal/server"
	"github.com/mj1618/macos-computer/internal/version"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// ServeOverrides carries command-line values that win over the environment.
// Zero values fall back to config.
type ServeOverrides struct {
	Transport string
	Port      int
}

// NewServerApp wires config, logging, tracing, the computer and the MCP
// server, and serves until the transport stops or the process is signalled.
func NewServerApp(overrides ServeOverrides) *fx.App {
	return fx.New(
		fx.Supply(overrides),

		fx.Provide(
			config.GetConfig,
			NewLogger,
			newTracer,
			NewComputer,
			newServer,
		),

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),

		fx.Invoke(
			runServer,
		),

		fx.StartTimeout(10*time.Second),
	)
}

func newServer(c *computer.Computer, logger *zap.Logger) *server.Server {
	return server.New(c, logger, version.Version)
}

func runServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	srv *server.Server,
	conf *config.Config,
	overrides ServeOverrides,
	logger *zap.Logger,
) {
	transport := conf.ServerConfig.Transport
	if overrides.Transport != "" {
		transport = overrides.Transport
	}
	port := conf.ServerConfig.Port
	if overrides.Port != 0 {
		port = overrides.Port
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := srv.Serve(transport, port); err != nil {
					logger.Error("MCP server stopped", zap.Error(err))
					exitCode = 1
				}
				_ = shutdowner.Shutdown(fx.ExitCode(exitCode))
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
