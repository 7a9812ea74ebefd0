package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/badele/namenorm/internal/config"
)

type CLI struct {
	Config   string `short:"c" type:"path" help:"Config file (defaults to ~/.config/namenorm/config.toml then ./namenorm.toml)."`
	Encoding string `short:"e" default:"utf8" enum:"utf8,cp437,cp850,iso-8859-1" help:"Encoding of names read from stdin (${enum})."`
	LogLevel string `name:"log-level" help:"Override the configured log level (debug, info, warn, error)."`

	Normalize NormalizeCmd `cmd:"" default:"withargs" help:"Normalize names with the configured pipeline."`
	Spaces    SpacesCmd    `cmd:"" help:"Collapse whitespace in names."`
	Tokens    TokensCmd    `cmd:"" help:"Classify the words of names into particles and parts."`
	Compare   CompareCmd   `cmd:"" help:"Compare two names by the initials of their words."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("namenorm"),
		kong.Description("Normalize, compare and tokenize personal names.\n\nIf no name is given, reads one name per line from stdin (pipe)."),
		kong.UsageOnError(),
	)

	app, err := newApp(&cli, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = ctx.Run(app)
	if errors.Is(err, errNoMatch) {
		os.Exit(1)
	}
	if err != nil {
		app.logger.Error("command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}

func newApp(cli *CLI, stdin io.Reader, stdout io.Writer) (*App, error) {
	var (
		cfg *config.Config
		err error
	)
	if cli.Config != "" {
		if _, statErr := os.Stat(cli.Config); statErr != nil {
			return nil, fmt.Errorf("config %s: %w", cli.Config, statErr)
		}
		cfg, err = config.LoadFiles(cli.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}

	return &App{
		Config:   cfg,
		Encoding: cli.Encoding,
		Stdin:    stdin,
		Stdout:   stdout,
		logger:   newLogger(cfg.Log, os.Stderr),
	}, nil
}

func newLogger(cfg config.LogConfig, output io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(output, opts))
	}
	return slog.New(slog.NewTextHandler(output, opts))
}
