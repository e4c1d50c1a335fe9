package config

import (
	"fmt"
	"os"

	"github.com/titanous/json5"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/handler"
	"github.com/philipp01105/sblog/handler/consolehandler"
	"github.com/philipp01105/sblog/handler/filehandler"
	"github.com/philipp01105/sblog/handler/multihandler"
	"github.com/philipp01105/sblog/logger"
)

// Config describes a logger
type Config struct {
	// Name is the logger name
	Name string `json:"name"`
	// Path is the log file (default: filehandler.DefaultPath)
	Path string `json:"path"`
	// Level is the threshold name, e.g. "WARNING" (default: ALL)
	Level string `json:"level"`
	// Console also writes every record to stdout
	Console bool `json:"console"`
}

// Load reads a JSON5 configuration file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a JSON5 document; comments and trailing commas are allowed
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.threshold(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Build creates the configured Logger
func (c Config) Build() (logger.Logger, error) {
	level, err := c.threshold()
	if err != nil {
		return nil, err
	}

	var h handler.Handler = filehandler.NewFileHandler(filehandler.FileConfig{Path: c.Path})
	if c.Console {
		h = multihandler.NewMultiHandler(h, consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{}))
	}
	h.SetFilter(filter.NewLevelFilter(level))

	return logger.NewBuilder().
		WithName(c.Name).
		WithHandler(h).
		Build(), nil
}

func (c Config) threshold() (core.Level, error) {
	if c.Level == "" {
		return core.All, nil
	}
	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return core.Level{}, fmt.Errorf("level: %w", err)
	}
	return level, nil
}
