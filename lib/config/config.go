// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/blockui"
)

// EnvironmentVariable names the config file when no --config flag is
// given.
const EnvironmentVariable = "BLOCKBENCH_CONFIG"

// Config is the master configuration for blockbench.
type Config struct {
	// Palette lists the draggable templates in display order. A file
	// that sets palette replaces the built-in list entirely.
	Palette []TemplateConfig `yaml:"palette"`

	// Workspace configures the drop target and its presentation.
	Workspace WorkspaceConfig `yaml:"workspace"`

	// Log configures diagnostics.
	Log LogConfig `yaml:"log"`
}

// TemplateConfig is one palette entry.
type TemplateConfig struct {
	// ID is the selector that identifies the template. Must be unique.
	ID string `yaml:"id"`

	// Kind is one of the block kinds: variables, arithmetic,
	// conditions, array, cycle, print.
	Kind string `yaml:"kind"`

	// Label is the text drawn inside the block.
	Label string `yaml:"label"`

	// Description is markdown shown in the hover tooltip.
	Description string `yaml:"description"`

	// Style is the visual presentation copied onto every placed item.
	Style StyleConfig `yaml:"style"`
}

// StyleConfig mirrors [block.Style] with string enums.
type StyleConfig struct {
	Foreground   string `yaml:"foreground"`
	Background   string `yaml:"background"`
	BorderColor  string `yaml:"border_color"`
	Border       string `yaml:"border"`
	Bold         bool   `yaml:"bold"`
	Italic       bool   `yaml:"italic"`
	Underline    bool   `yaml:"underline"`
	PaddingLeft  int    `yaml:"padding_left"`
	PaddingRight int    `yaml:"padding_right"`
	Align        string `yaml:"align"`
}

// WorkspaceConfig configures the workspace pane.
type WorkspaceConfig struct {
	// Preview enables the floating copy that follows the pointer
	// during a drag.
	// Default: true
	Preview bool `yaml:"preview"`

	// Placeholder is the text shown while the workspace is empty.
	// Default: "Drag blocks here"
	Placeholder string `yaml:"placeholder"`

	// PaletteWidth is the palette pane width in terminal cells.
	// Default: 22
	PaletteWidth int `yaml:"palette_width"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, or error.
	// Default: warn
	Level string `yaml:"level"`
}

// Default returns the built-in configuration: the six-template
// palette, a previewing workspace, and warn-level logging.
func Default() *Config {
	palette := block.DefaultPalette()
	templates := make([]TemplateConfig, len(palette))
	for index, template := range palette {
		templates[index] = templateConfigFrom(template)
	}

	return &Config{
		Palette: templates,
		Workspace: WorkspaceConfig{
			Preview:      true,
			Placeholder:  blockui.DefaultPlaceholder,
			PaletteWidth: blockui.DefaultPaletteWidth,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

func templateConfigFrom(template block.Template) TemplateConfig {
	return TemplateConfig{
		ID:          template.ID,
		Kind:        string(template.Kind),
		Label:       template.Label,
		Description: template.Description,
		Style: StyleConfig{
			Foreground:   template.Style.Foreground,
			Background:   template.Style.Background,
			BorderColor:  template.Style.BorderColor,
			Border:       string(template.Style.Border),
			Bold:         template.Style.Bold,
			Italic:       template.Style.Italic,
			Underline:    template.Style.Underline,
			PaddingLeft:  template.Style.PaddingLeft,
			PaddingRight: template.Style.PaddingRight,
			Align:        string(template.Style.Align),
		},
	}
}

// Load loads configuration from the file named by BLOCKBENCH_CONFIG.
// When the variable is unset the built-in defaults are returned.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, on top of
// the defaults. Files ending in .json or .jsonc may contain comments
// and trailing commas.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes one file, merging into the current config. Unknown
// keys are errors so typos do not silently fall back to defaults.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the configuration for errors. Every problem is
// reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Palette) == 0 {
		errs = append(errs, fmt.Errorf("palette must contain at least one template"))
	}

	seen := make(map[string]int, len(c.Palette))
	for index, entry := range c.Palette {
		if _, err := entry.Template(); err != nil {
			errs = append(errs, fmt.Errorf("palette[%d]: %w", index, err))
		}
		if entry.ID == "" {
			continue
		}
		if first, duplicate := seen[entry.ID]; duplicate {
			errs = append(errs, fmt.Errorf("palette[%d]: duplicate id %q (first at palette[%d])", index, entry.ID, first))
			continue
		}
		seen[entry.ID] = index
	}

	width := c.Workspace.PaletteWidth
	if width < blockui.MinPaletteWidth || width > blockui.MaxPaletteWidth {
		errs = append(errs, fmt.Errorf("workspace.palette_width must be between %d and %d, got %d",
			blockui.MinPaletteWidth, blockui.MaxPaletteWidth, width))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Template converts the entry to a [block.Template], reporting every
// invalid field.
func (entry TemplateConfig) Template() (block.Template, error) {
	var errs []error

	if entry.ID == "" {
		errs = append(errs, fmt.Errorf("id is required"))
	}
	if entry.Label == "" {
		errs = append(errs, fmt.Errorf("label is required"))
	}
	kind, err := block.ParseKind(entry.Kind)
	if err != nil {
		errs = append(errs, err)
	}
	border, err := block.ParseBorder(entry.Style.Border)
	if err != nil {
		errs = append(errs, fmt.Errorf("style.border: %w", err))
	}
	align, err := block.ParseAlign(entry.Style.Align)
	if err != nil {
		errs = append(errs, fmt.Errorf("style.align: %w", err))
	}
	if entry.Style.PaddingLeft < 0 || entry.Style.PaddingRight < 0 {
		errs = append(errs, fmt.Errorf("style padding must not be negative"))
	}
	if len(errs) > 0 {
		return block.Template{}, errors.Join(errs...)
	}

	return block.Template{
		ID:          entry.ID,
		Kind:        kind,
		Label:       entry.Label,
		Description: entry.Description,
		Style: block.Style{
			Foreground:   entry.Style.Foreground,
			Background:   entry.Style.Background,
			BorderColor:  entry.Style.BorderColor,
			Border:       border,
			Bold:         entry.Style.Bold,
			Italic:       entry.Style.Italic,
			Underline:    entry.Style.Underline,
			PaddingLeft:  entry.Style.PaddingLeft,
			PaddingRight: entry.Style.PaddingRight,
			Align:        align,
		},
	}, nil
}

// Templates converts the whole palette. Call [Config.Validate] first;
// the first invalid entry is reported here.
func (c *Config) Templates() ([]block.Template, error) {
	templates := make([]block.Template, 0, len(c.Palette))
	for index, entry := range c.Palette {
		template, err := entry.Template()
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", index, err)
		}
		templates = append(templates, template)
	}
	if err := block.ValidatePalette(templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// SlogLevel parses Level. An empty level means warn.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", l.Level)
	}
	return level, nil
}
