// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// blockbench is a terminal block builder: drag block templates from a
// palette into an ordered workspace with the mouse, and remove placed
// blocks with their × button. When the program exits, the final block
// sequence is printed to stdout, one block per line.
//
// The palette comes from a YAML or JSONC config file (--config or
// BLOCKBENCH_CONFIG), or the built-in six-template palette when
// neither is set.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/blockbench/cmd/blockbench/cli"
	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/blockui"
	"github.com/bureau-foundation/blockbench/lib/config"
	"github.com/bureau-foundation/blockbench/lib/drag"
	"github.com/bureau-foundation/blockbench/lib/version"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	code, printMessage := cli.Exit(err)
	if printMessage {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}

// options holds the parsed command line.
type options struct {
	configPath  string
	logOutput   string
	logLevel    string
	noPreview   bool
	showVersion bool
	showHelp    bool
}

func newFlagSet(parsed *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("blockbench", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&parsed.configPath, "config", "", "path to a YAML or JSONC config file (default: $"+config.EnvironmentVariable+", else built-in)")
	flagSet.StringVar(&parsed.logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.StringVar(&parsed.logLevel, "log-level", "", "minimum log level: debug, info, warn, error (overrides log.level)")
	flagSet.BoolVar(&parsed.noPreview, "no-preview", false, "do not draw the block that follows the pointer while dragging")
	flagSet.BoolVar(&parsed.showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&parsed.showHelp, "help", "h", false, "show help")
	return flagSet
}

func run(args []string, stdout io.Writer) error {
	var parsed options
	flagSet := newFlagSet(&parsed)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%w", err).WithHint("Run 'blockbench --help' for usage.")
	}
	if parsed.showHelp {
		printHelp(flagSet)
		return nil
	}
	if parsed.showVersion {
		version.Print(stdout, "blockbench")
		return nil
	}
	if remaining := flagSet.Args(); len(remaining) > 0 {
		return cli.Validation("unexpected argument: %s", remaining[0])
	}

	cfg, source, err := loadConfig(parsed.configPath)
	if err != nil {
		return err
	}
	if parsed.logLevel != "" {
		cfg.Log.Level = parsed.logLevel
	}
	if parsed.noPreview {
		cfg.Workspace.Preview = false
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid configuration from %s:\n%w", source, err).
			WithHint("Fix the listed fields; the built-in palette is used when no config is given.")
	}

	templates, err := cfg.Templates()
	if err != nil {
		return cli.Internal("converting palette: %w", err)
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return cli.Internal("parsing log level: %w", err)
	}

	commandLogger := cli.NewCommandLogger(level)
	commandLogger.Debug("configuration loaded",
		"source", source,
		"templates", len(templates),
		"preview", cfg.Workspace.Preview,
	)

	items, err := runBuilder(templates, cfg, level, parsed.logOutput)
	if err != nil {
		return err
	}

	for index, item := range items {
		fmt.Fprintf(stdout, "%d. %s (%s)\n", index+1, item.Label, item.Kind)
	}
	return nil
}

// loadConfig resolves the config source: the flag, then the
// environment variable, then the built-in defaults. The returned
// source names where the config came from, for messages.
func loadConfig(flagPath string) (*config.Config, string, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(config.EnvironmentVariable)
	}
	if path == "" {
		return config.Default(), "built-in defaults", nil
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", cli.NotFound("config file %s does not exist", path).
				WithHint("Pass --config with an existing file, or unset " + config.EnvironmentVariable + " to use the built-in palette.")
		}
		return nil, "", cli.Validation("%w", err).
			WithHint("Config files are YAML; files ending in .json or .jsonc may contain comments.")
	}
	return cfg, path, nil
}

// runBuilder runs the terminal UI until the user quits and returns the
// final workspace sequence.
//
// Log records are routed through a TUILogHandler that displays
// warnings and errors in the status bar instead of writing to stderr,
// which would corrupt the alt-screen display. With --log-output, every
// record at the configured level is also written to a JSON file.
func runBuilder(templates []block.Template, cfg *config.Config, level slog.Level, logOutput string) ([]block.Item, error) {
	tuiHandler := blockui.NewTUILogHandler(slog.LevelWarn)

	var handler slog.Handler = tuiHandler
	if logOutput != "" {
		fileHandler, fileCloser, err := openFileLogHandler(logOutput, level)
		if err != nil {
			return nil, cli.Validation("cannot open log file %s: %w", logOutput, err)
		}
		defer fileCloser()
		handler = fanoutHandler{tuiHandler, fileHandler}
	}
	logger := slog.New(handler)

	model := blockui.NewModel(templates, blockui.Options{
		PaletteWidth: cfg.Workspace.PaletteWidth,
		Placeholder:  cfg.Workspace.Placeholder,
		NoPreview:    !cfg.Workspace.Preview,
		Logger:       logger.With("component", "drag"),
		Hooks: drag.HookFuncs{
			Drop: func(item block.Item, index int) {
				logger.Info("block placed", "item", item.ID.String(), "template", item.TemplateID, "index", index)
			},
			Delete: func(item block.Item, index int) {
				logger.Info("block removed", "item", item.ID.String(), "template", item.TemplateID, "index", index)
			},
		},
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	tuiHandler.SetProgram(program)

	finalModel, err := program.Run()
	tuiHandler.SetProgram(nil)
	if err != nil {
		return nil, cli.Internal("running terminal UI: %w", err)
	}

	final, ok := finalModel.(blockui.Model)
	if !ok {
		return nil, cli.Internal("terminal UI returned unexpected model %T", finalModel)
	}
	return final.Workspace().Items(), nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `blockbench: build a block program by dragging blocks with the mouse.

Press on a block in the left palette, drag it into the workspace, and
release. The new block lands above the first placed block whose middle
is below the pointer, or at the end. Click × on a placed block to
remove it. Press q to quit; the final sequence is printed to stdout.

Usage:
  blockbench [flags]

Examples:
  # Start with the built-in palette
  blockbench

  # Use a custom palette and keep a debug log
  blockbench --config palette.yaml --log-level debug --log-output blockbench.jsonl

Config file (YAML, or JSONC when the name ends in .json/.jsonc):
  palette:
    - id: counter
      kind: variables        # variables, arithmetic, conditions, array, cycle, print
      label: Counter
      description: Holds a **count**.
      style: {foreground: "231", background: "25", border: rounded, bold: true}
  workspace:
    preview: true
    placeholder: Drag blocks here
    palette_width: 22
  log:
    level: warn

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string, level slog.Level) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
