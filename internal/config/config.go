// Package config reads the settings shared by the device binary and the
// preview tool from the environment. Command-line flags override them.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/teeui/internal/text"
)

const (
	EnvDevice     = "TEEUI_DEVICE"
	EnvMagnified  = "TEEUI_MAGNIFIED"
	EnvLanguage   = "TEEUI_LANG"
	EnvFontEngine = "TEEUI_FONT_ENGINE"
	EnvStdioLog   = "TEEUI_STDIO_LOG"
)

// Config contains the settings for one dialog session.
type Config struct {
	Device     string
	Magnified  bool
	Language   string
	FontEngine text.Engine
	StdioLog   string
}

// FromEnv starts from defaults and applies every variable that is set.
func FromEnv(defaults Config) (Config, error) {
	cfg := defaults

	if v := os.Getenv(EnvDevice); v != "" {
		cfg.Device = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv(EnvStdioLog); v != "" {
		cfg.StdioLog = v
	}

	if raw := os.Getenv(EnvMagnified); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvMagnified, raw, err)
		}
		cfg.Magnified = parsed
	}

	if raw := os.Getenv(EnvFontEngine); raw != "" {
		engine, err := text.ParseEngine(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFontEngine, err)
		}
		cfg.FontEngine = engine
	}

	return cfg, nil
}
