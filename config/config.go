// Package config loads vi-chess settings from a TOML file.
//
// Search order: $VICHESS_CONFIG, then <user config dir>/vi-chess/config.toml.
// A missing file yields DefaultConfig. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/rules"
	"github.com/lixenwraith/vi-chess/terminal"
)

// ErrInvalidConfig is returned for undecodable or out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables
const (
	EnvConfig = "VICHESS_CONFIG"
	EnvDebug  = "VICHESS_DEBUG"
)

// Terminal backends
const (
	BackendNative = "native"
	BackendTcell  = "tcell"
)

// StartPosition is the standard chess starting position
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const appDir = "vi-chess"

// Config is the decoded configuration file
type Config struct {
	Rules    string         `toml:"rules"`
	Position string         `toml:"position"`
	Rows     int            `toml:"rows"`
	Cols     int            `toml:"cols"`
	Format   FormatConfig   `toml:"format"`
	Origin   OriginConfig   `toml:"origin"`
	Colors   ColorsConfig   `toml:"colors"`
	Terminal TerminalConfig `toml:"terminal"`
	Audio    AudioConfig    `toml:"audio"`
	Log      LogConfig      `toml:"log"`
}

type FormatConfig struct {
	CellWidth  int    `toml:"cell_width"`
	CellHeight int    `toml:"cell_height"`
	Border     string `toml:"border"`
}

type OriginConfig struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// ColorsConfig holds color specs, see ParseColor
type ColorsConfig struct {
	Foreground string `toml:"foreground"`
	Light      string `toml:"light"`
	Dark       string `toml:"dark"`
	Highlight  string `toml:"highlight"`
}

type TerminalConfig struct {
	Backend   string `toml:"backend"`
	AltScreen bool   `toml:"alt_screen"`
	QuitKey   string `toml:"quit_key"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Palette is the resolved color set
type Palette struct {
	Foreground grid.Color
	Light      grid.Color
	Dark       grid.Color
	Highlight  grid.Color
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Rules:    rules.NameChess,
		Position: StartPosition,
		Rows:     8,
		Cols:     8,
		Format: FormatConfig{
			CellWidth:  7,
			CellHeight: 3,
			Border:     grid.BorderNone.String(),
		},
		Colors: ColorsConfig{
			Foreground: "33",
			Light:      "7",
			Dark:       "0",
			Highlight:  "23",
		},
		Terminal: TerminalConfig{
			Backend:   BackendNative,
			AltScreen: true,
			QuitKey:   "q",
		},
		Audio: AudioConfig{Volume: 0.5},
	}
}

// Load reads the configuration from the standard location
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		// No resolvable config dir, run on defaults
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return LoadFromFile(path)
}

// Path returns the config file location
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, "config.toml"), nil
}

// LoadFromFile reads the configuration at path, defaults if it does not exist
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML from r over the defaults and validates the result
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvDebug); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = debug
		}
	}
}

// Validate checks every setting without building anything
func (c *Config) Validate() error {
	switch c.Rules {
	case rules.NameChess:
		if c.Rows != 8 || c.Cols != 8 {
			return fmt.Errorf("%w: chess board is 8x8, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
		}
	case rules.NameSandbox:
		if c.Rows < 1 || c.Cols < 1 {
			return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
		}
	default:
		return fmt.Errorf("%w: unknown rules %q", ErrInvalidConfig, c.Rules)
	}

	if _, err := c.GridFormat(); err != nil {
		return err
	}
	if c.Origin.X < 0 || c.Origin.Y < 0 {
		return fmt.Errorf("%w: negative origin (%d,%d)", ErrInvalidConfig, c.Origin.X, c.Origin.Y)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	switch c.Terminal.Backend {
	case BackendNative, BackendTcell:
	default:
		return fmt.Errorf("%w: unknown terminal backend %q", ErrInvalidConfig, c.Terminal.Backend)
	}
	if _, err := c.QuitKey(); err != nil {
		return err
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

// GridFormat builds the cell format
func (c *Config) GridFormat() (grid.Format, error) {
	border, err := grid.ParseBorderStyle(c.Format.Border)
	if err != nil {
		return grid.Format{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	f, err := grid.NewFormat(c.Format.CellWidth, c.Format.CellHeight, border)
	if err != nil {
		return grid.Format{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return f, nil
}

// Palette resolves every color spec
func (c *Config) Palette() (Palette, error) {
	var p Palette
	specs := []struct {
		name string
		spec string
		dst  *grid.Color
	}{
		{"foreground", c.Colors.Foreground, &p.Foreground},
		{"light", c.Colors.Light, &p.Light},
		{"dark", c.Colors.Dark, &p.Dark},
		{"highlight", c.Colors.Highlight, &p.Highlight},
	}
	for _, s := range specs {
		color, err := ParseColor(s.spec)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", s.name, err)
		}
		*s.dst = color
	}
	return p, nil
}

// QuitKey parses the quit binding
func (c *Config) QuitKey() (terminal.KeySpec, error) {
	k, err := terminal.ParseKeySpec(c.Terminal.QuitKey)
	if err != nil {
		return terminal.KeySpec{}, fmt.Errorf("%w: quit_key: %v", ErrInvalidConfig, err)
	}
	return k, nil
}

// ParseColor resolves a palette index ("0".."255"), a color name ("navy")
// or "#rrggbb" to a 256-color palette index
// True colors map to the nearest cube or grayscale entry
func ParseColor(spec string) (grid.Color, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, fmt.Errorf("%w: empty color", ErrInvalidConfig)
	}

	if n, err := strconv.Atoi(spec); err == nil {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: palette index %d outside 0-255", ErrInvalidConfig, n)
		}
		return grid.Color(n), nil
	}

	c := tcell.GetColor(strings.ToLower(spec))
	if !c.Valid() {
		return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, spec)
	}
	if !c.IsRGB() {
		if idx := int(c & 0xff); c == tcell.PaletteColor(idx) {
			return grid.Color(idx), nil
		}
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return 0, fmt.Errorf("%w: color %q has no rgb value", ErrInvalidConfig, spec)
	}
	return grid.Color(terminal.RGBTo256(terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)})), nil
}
