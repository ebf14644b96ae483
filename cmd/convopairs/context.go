package main

import (
	"fmt"
	"log/slog"
	"os"

	"convopairs/pkg/config"
	"convopairs/pkg/corpus"
)

// commandContext carries lazily loaded configuration and the logger across
// subcommands.
type commandContext struct {
	configPath *string

	cfg    *config.Config
	logger *slog.Logger
}

func newCommandContext(configPath *string) *commandContext {
	return &commandContext{configPath: configPath}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configPath != nil {
		path = *c.configPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return c.logger, nil
}

// cornell builds the Cornell source from config.
func (c *commandContext) cornell() (*corpus.Cornell, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return &corpus.Cornell{
		DataDir:  cfg.DataDir,
		URL:      cfg.Cornell.URL,
		Decoding: cfg.DecodePolicy(),
		Logger:   logger,
	}, nil
}

// ubuntu builds the Ubuntu source from config.
func (c *commandContext) ubuntu() (*corpus.Ubuntu, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return &corpus.Ubuntu{Dir: cfg.UbuntuDir()}, nil
}

// source resolves a --corpus flag value to a corpus variant.
func (c *commandContext) source(name string) (corpus.Source, error) {
	switch name {
	case "cornell":
		return c.cornell()
	case "ubuntu":
		return c.ubuntu()
	default:
		return nil, fmt.Errorf("unknown corpus %q (expected cornell or ubuntu)", name)
	}
}
