// Package config loads the carousel configuration from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ayn2op/carousel"
	"github.com/ayn2op/carousel/keybind"
	"github.com/ayn2op/carousel/tui"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName  = "carousel"
	fileName = "config.toml"
	// localFileName is looked up in the working directory and wins over the
	// user config.
	localFileName = "carousel.toml"
)

// ErrInvalid is returned for values outside their domain.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Appearance AppearanceConfig `koanf:"appearance"`
	Behavior   BehaviorConfig   `koanf:"behavior"`
	Animation  AnimationConfig  `koanf:"animation"`
	Keys       KeysConfig       `koanf:"keys"`
	Border     string           `koanf:"border"` // "plain", "round", "thick" or "double"
}

// AppearanceConfig mirrors carousel.Appearance. Lengths are in cells.
type AppearanceConfig struct {
	SideAlpha       float64      `koanf:"side_alpha"`
	SideSizeRatio   float64      `koanf:"side_size_ratio"`
	CenterRatio     float64      `koanf:"center_ratio"`
	CenterDimension string       `koanf:"center_dimension"` // "width" or "height"
	Spacing         float64      `koanf:"spacing"`
	Insets          InsetsConfig `koanf:"insets"`
}

type InsetsConfig struct {
	Top    float64 `koanf:"top"`
	Left   float64 `koanf:"left"`
	Bottom float64 `koanf:"bottom"`
	Right  float64 `koanf:"right"`
}

type BehaviorConfig struct {
	Snap            string  `koanf:"snap"` // "hard", "soft" or "none"
	Infinite        bool    `koanf:"infinite"`
	PreloadDistance float64 `koanf:"preload_distance"`
	VelocityFactor  float64 `koanf:"velocity_factor"`
	FreeEdges       bool    `koanf:"free_edges"`
}

type AnimationConfig struct {
	FPS           int     `koanf:"fps"`
	Frequency     float64 `koanf:"frequency"`
	Damping       float64 `koanf:"damping"`
	MomentumScale float64 `koanf:"momentum_scale"` // ms of momentum per release
}

// KeysConfig lists the keys bound to each action. An empty list unbinds the
// action.
type KeysConfig struct {
	Previous       []string `koanf:"previous"`
	Next           []string `koanf:"next"`
	First          []string `koanf:"first"`
	Last           []string `koanf:"last"`
	Select         []string `koanf:"select"`
	ToggleSnap     []string `koanf:"toggle_snap"`
	ToggleInfinite []string `koanf:"toggle_infinite"`
	Quit           []string `koanf:"quit"`
}

// Default returns the configuration used for every key no file sets.
func Default() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			SideAlpha:       0.45,
			SideSizeRatio:   0.8,
			CenterRatio:     0.5,
			CenterDimension: "width",
			Spacing:         2,
			Insets:          InsetsConfig{Top: 1, Bottom: 1},
		},
		Behavior: BehaviorConfig{
			Snap:            carousel.SnapHard.String(),
			PreloadDistance: carousel.DefaultPreloadDistance,
			VelocityFactor:  carousel.DefaultVelocityFactor,
		},
		Animation: AnimationConfig{
			FPS:           tui.DefaultFPS,
			Frequency:     tui.DefaultFrequency,
			Damping:       tui.DefaultDamping,
			MomentumScale: tui.DefaultMomentumScale,
		},
		Keys: KeysConfig{
			Previous:       []string{"left", "h"},
			Next:           []string{"right", "l"},
			First:          []string{"home", "g"},
			Last:           []string{"end", "G"},
			Select:         []string{"enter", "space"},
			ToggleSnap:     []string{"s"},
			ToggleInfinite: []string{"i"},
			Quit:           []string{"q", "ctrl+c"},
		},
		Border: "round",
	}
}

// Load reads the user config and the local config, last wins. A non-empty
// path is read after them and must exist.
func Load(path string) (*Config, error) {
	var paths []string
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	if path != "" {
		paths = append(paths, expandPath(path))
	}
	return load(paths...)
}

// LoadFile reads a single file over the defaults.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Behavior.Snap = strings.ToLower(strings.TrimSpace(cfg.Behavior.Snap))
	cfg.Appearance.CenterDimension = strings.ToLower(strings.TrimSpace(cfg.Appearance.CenterDimension))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func searchPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/carousel/config.toml
		filepath.Join(xdg.ConfigHome, appName, fileName),
		// 2. ./carousel.toml (pwd, highest priority)
		localFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks every value that is not checked by the engine itself.
func (c *Config) Validate() error {
	if _, err := c.CarouselAppearance(); err != nil {
		return err
	}
	if _, err := carousel.ParseSnapBehavior(c.Behavior.Snap); err != nil {
		return err
	}
	if _, ok := tui.BorderSetByName(c.Border); !ok {
		return fmt.Errorf("%w: unknown border %q", ErrInvalid, c.Border)
	}

	switch a := c.Animation; {
	case a.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalid, a.FPS)
	case a.Frequency <= 0:
		return fmt.Errorf("%w: frequency %v must be positive", ErrInvalid, a.Frequency)
	case a.Damping < 0:
		return fmt.Errorf("%w: damping %v must not be negative", ErrInvalid, a.Damping)
	case a.MomentumScale < 0:
		return fmt.Errorf("%w: momentum scale %v must not be negative", ErrInvalid, a.MomentumScale)
	}
	return nil
}

// CarouselAppearance converts the appearance section.
func (c *Config) CarouselAppearance() (carousel.Appearance, error) {
	a := c.Appearance
	var dimension carousel.Dimension
	switch a.CenterDimension {
	case "width", "":
		dimension = carousel.DimensionWidth
	case "height":
		dimension = carousel.DimensionHeight
	default:
		return carousel.Appearance{}, fmt.Errorf("%w: unknown center dimension %q", carousel.ErrInvalidAppearance, a.CenterDimension)
	}

	appearance := carousel.Appearance{
		SideItemTransform: carousel.Transform{Alpha: a.SideAlpha, SizeRatio: a.SideSizeRatio},
		CenterItemWidth:   carousel.CenterWidth{Ratio: a.CenterRatio, Dimension: dimension},
		ItemSpacing:       a.Spacing,
		AdditionalInsets: carousel.Insets{
			Top:    a.Insets.Top,
			Left:   a.Insets.Left,
			Bottom: a.Insets.Bottom,
			Right:  a.Insets.Right,
		},
	}
	if err := appearance.Validate(); err != nil {
		return carousel.Appearance{}, err
	}
	return appearance, nil
}

// EngineOptions returns the engine options for the appearance and behavior
// sections.
func (c *Config) EngineOptions() ([]carousel.Option, error) {
	appearance, err := c.CarouselAppearance()
	if err != nil {
		return nil, err
	}
	snap, err := carousel.ParseSnapBehavior(c.Behavior.Snap)
	if err != nil {
		return nil, err
	}
	return []carousel.Option{
		carousel.WithAppearance(appearance),
		carousel.WithSnapBehavior(snap),
		carousel.WithInfinite(c.Behavior.Infinite),
		carousel.WithPreloadDistance(c.Behavior.PreloadDistance),
		carousel.WithVelocityFactor(c.Behavior.VelocityFactor),
		carousel.WithFreeEdges(c.Behavior.FreeEdges),
	}, nil
}

// BorderSet returns the configured border runes.
func (c *Config) BorderSet() tui.BorderSet {
	set, _ := tui.BorderSetByName(c.Border)
	return set
}

// Bindings returns one binding per action, in help order.
func (c *Config) Bindings() []keybind.Binding {
	k := c.Keys
	entries := []struct {
		action keybind.Action
		keys   []string
		desc   string
	}{
		{keybind.ActionPrevious, k.Previous, "prev"},
		{keybind.ActionNext, k.Next, "next"},
		{keybind.ActionFirst, k.First, "first"},
		{keybind.ActionLast, k.Last, "last"},
		{keybind.ActionSelect, k.Select, "select"},
		{keybind.ActionToggleSnap, k.ToggleSnap, "snap"},
		{keybind.ActionToggleInfinite, k.ToggleInfinite, "wrap"},
		{keybind.ActionQuit, k.Quit, "quit"},
	}

	bindings := make([]keybind.Binding, 0, len(entries))
	for _, e := range entries {
		bindings = append(bindings, keybind.NewBinding(e.action,
			keybind.WithKeys(e.keys...),
			keybind.WithHelp(helpKey(e.keys), e.desc),
		))
	}
	return bindings
}

// helpKey names the first key the way it is shown in the help bar.
func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	switch key := keybind.Normalize(keys[0]); key {
	case "left":
		return "←"
	case "right":
		return "→"
	case " ":
		return "space"
	default:
		return key
	}
}
