// Package config loads sbgnedit settings from a TOML file.
//
// The file is optional. Every key has a default, and keys the file leaves
// out keep theirs:
//
//	strict = false
//	log_level = "debug"
//
//	[render]
//	detailed = true
//	format = "dot"
//
// Command-line flags take precedence over the file.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sbgnedit/pkg/errors"
)

const appName = "sbgnedit"

// Render formats understood by the render command.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	renderFormats = []string{FormatDOT, FormatSVG, FormatPDF, FormatPNG}
)

// Config holds user settings.
type Config struct {
	// Strict selects the full SBGN rule set. False switches the rules off.
	Strict bool `toml:"strict"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	Render RenderConfig `toml:"render"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Detailed bool   `toml:"detailed"`
	Format   string `toml:"format"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Strict:   true,
		LogLevel: "info",
		Render:   RenderConfig{Format: FormatSVG},
	}
}

// Path returns the settings file location following the XDG base directory
// convention (~/.config/sbgnedit/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// LoadDefault reads the file at [Path], falling back to [Default] when it
// does not exist.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Validate reports values outside their allowed sets.
func (c Config) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return errors.New(errors.ErrCodeInvalidConfig, "log_level %q is not one of %s", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(renderFormats, strings.ToLower(c.Render.Format)) {
		return errors.New(errors.ErrCodeInvalidConfig, "render.format %q is not one of %s", c.Render.Format, strings.Join(renderFormats, ", "))
	}
	return nil
}
