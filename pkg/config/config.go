// Package config resolves the CLI-facing configuration: defaults, then an
// optional TOML file, then environment variables. The library itself only
// takes typed options; everything here exists so the dahlia command can be
// configured without flags.
package config

import (
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dahlia/pkg/depth"
	"github.com/arthur-debert/dahlia/pkg/errors"
	"github.com/arthur-debert/dahlia/pkg/logging"
)

// ConfigFileName is the config file path relative to the XDG config dir
const ConfigFileName = "dahlia/config.toml"

// Environment variable names
const (
	EnvDepth     = "DAHLIA_DEPTH"
	EnvMarker    = "DAHLIA_MARKER"
	EnvAutoReset = "DAHLIA_AUTO_RESET"
)

// Config holds the conversion settings the CLI applies to its converter
type Config struct {
	// Depth is a depth name ("tty", "low", "medium", "high", "none") or
	// bit width, or "auto" to detect from the terminal.
	Depth string `toml:"depth"`
	// Marker is the code delimiter, exactly one character.
	Marker string `toml:"marker"`
	// AutoReset appends a full reset to converted output.
	AutoReset bool `toml:"auto_reset"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Depth:     "auto",
		Marker:    "&",
		AutoReset: true,
	}
}

// Load resolves the configuration: defaults, overridden by the config
// file if one exists, overridden by environment variables.
func Load() (Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "could not read %s", path)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, errors.ErrConfigParse, "could not parse %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	if v := os.Getenv(EnvDepth); v != "" {
		cfg.Depth = v
	}
	if v := os.Getenv(EnvMarker); v != "" {
		cfg.Marker = v
	}
	if v := os.Getenv(EnvAutoReset); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.Wrapf(err, errors.ErrConfigParse, "invalid %s value %q", EnvAutoReset, v)
		}
		cfg.AutoReset = b
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings that can be rejected before any
// conversion: the marker length and the depth name.
func (c Config) Validate() error {
	if _, err := c.MarkerRune(); err != nil {
		return err
	}
	_, err := c.ParseDepth()
	return err
}

// MarkerRune returns the marker as a rune, rejecting anything that is not
// exactly one character.
func (c Config) MarkerRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Marker)
	if c.Marker == "" || size != len(c.Marker) || r == utf8.RuneError {
		return 0, errors.Newf(errors.ErrInvalidMarker,
			"marker must be exactly one character, got %q", c.Marker)
	}
	return r, nil
}

// ParseDepth parses the configured depth name. "auto" parses to None;
// use ResolveDepth to detect the terminal's depth instead.
func (c Config) ParseDepth() (depth.Depth, error) {
	if c.Depth == "" || c.Depth == "auto" {
		return depth.None, nil
	}
	return depth.Parse(c.Depth)
}

// ResolveDepth returns the depth to convert at for the given output
// stream, running terminal detection when the configured value is "auto".
func (c Config) ResolveDepth(output *os.File) (depth.Depth, error) {
	if c.Depth == "" || c.Depth == "auto" {
		return depth.Detect(output), nil
	}
	return depth.Parse(c.Depth)
}
