package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppConfig      *AppConfig
	ComputerConfig *ComputerConfig
	ServerConfig   *ServerConfig
}

type AppConfig struct {
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	TraceEnabled bool   `envconfig:"TRACE_ENABLED" default:"false"`
}

type ComputerConfig struct {
	FailSafe        bool `envconfig:"COMPUTER_FAILSAFE" default:"true"`
	PauseMS         int  `envconfig:"COMPUTER_PAUSE_MS" default:"100"`
	DragStepMS      int  `envconfig:"COMPUTER_DRAG_STEP_MS" default:"50"`
	ScriptTimeoutMS int  `envconfig:"COMPUTER_SCRIPT_TIMEOUT_MS" default:"5000"`
}

type ServerConfig struct {
	Transport string `envconfig:"MCP_TRANSPORT" default:"stdio"`
	Port      int    `envconfig:"MCP_PORT" default:"8080"`
}

func (c *ComputerConfig) Pause() time.Duration {
	return time.Duration(c.PauseMS) * time.Millisecond
}

func (c *ComputerConfig) DragStep() time.Duration {
	return time.Duration(c.DragStepMS) * time.Millisecond
}

func (c *ComputerConfig) ScriptTimeout() time.Duration {
	return time.Duration(c.ScriptTimeoutMS) * time.Millisecond
}

func GetConfig() (*Config, error) {
	_ = godotenv.Load()

	var conf Config

	if err := envconfig.Process("", &conf); err != nil {
		return nil, fmt.Errorf("read config from env vars: %w", err)
	}

	if conf.ComputerConfig.ScriptTimeoutMS <= 0 {
		return nil, fmt.Errorf("COMPUTER_SCRIPT_TIMEOUT_MS must be positive, got %d", conf.ComputerConfig.ScriptTimeoutMS)
	}
	switch conf.ServerConfig.Transport {
	case "stdio", "streamable-http":
	default:
		return nil, fmt.Errorf("MCP_TRANSPORT must be stdio or streamable-http, got %q", conf.ServerConfig.Transport)
	}

	return &conf, nil
}
