package bootstrap

import (
	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/internal/config"
	"github.com/mj1618/macos-computer/internal/platform"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// NewComputer builds the adapter over the registered platform backends with
// pacing and safety taken from config.
func NewComputer(config *config.Config, logger *zap.Logger, tracer trace.Tracer) (*computer.Computer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return computer.New(provider, ComputerOptions(config, logger, tracer)...)
}

// ComputerOptions translates config into adapter options.
func ComputerOptions(config *config.Config, logger *zap.Logger, tracer trace.Tracer) []computer.Option {
	cc := config.ComputerConfig
	return []computer.Option{
		computer.WithFailSafe(cc.FailSafe),
		computer.WithPause(cc.Pause()),
		computer.WithDragStepDelay(cc.DragStep()),
		computer.WithScriptTimeout(cc.ScriptTimeout()),
		computer.WithLogger(logger),
		computer.WithTracer(tracer),
	}
}
