package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Package config holds user defaults for the passepartout tool.

// Config struct to hold all configuration data
type Config struct {
	Mode         string            `mapstructure:"mode"`
	OutputPrefix string            `mapstructure:"output_prefix"`
	JPEGQuality  int               `mapstructure:"jpeg_quality"`
	AutoOrient   bool              `mapstructure:"auto_orient"`
	MaxCanvas    Limits            `mapstructure:"max_canvas"`
	Presets      map[string]Preset `mapstructure:"presets"`
}

// Limits caps the output canvas, in pixels.
type Limits struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Dimensions is a width/height pair in millimeters.
type Dimensions struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// Preset names a paper and passepartout combination.
type Preset struct {
	Paper        Dimensions `mapstructure:"paper"`
	Passepartout Dimensions `mapstructure:"passepartout"`
}

// builtinPresets are always available; presets from the config file with the
// same name replace them.
var builtinPresets = map[string]Preset{
	"a4":    {Paper: Dimensions{297, 210}, Passepartout: Dimensions{260, 180}},
	"a3":    {Paper: Dimensions{420, 297}, Passepartout: Dimensions{380, 260}},
	"13x18": {Paper: Dimensions{180, 130}, Passepartout: Dimensions{150, 100}},
	"20x30": {Paper: Dimensions{300, 200}, Passepartout: Dimensions{175, 125}},
	"30x40": {Paper: Dimensions{400, 300}, Passepartout: Dimensions{270, 180}},
	"40x50": {Paper: Dimensions{500, 400}, Passepartout: Dimensions{350, 250}},
}

var (
	instance *Config
	once     sync.Once
)

// GetConfig returns the singleton Config loaded from the user's config file.
// A missing or unreadable file falls back to defaults.
func GetConfig() *Config {
	once.Do(func() {
		cfg, err := Load(GetFilename())
		if err != nil {
			log.Printf("Error loading config, using defaults: %v", err)
			cfg = Default()
		}
		instance = cfg
	})
	return instance
}

// GetPath returns the path to the user's config directory
func GetPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return LogSubDir
	}
	return filepath.Join(homeDir, LogSubDir)
}

// GetFilename returns the path to the user's config file
func GetFilename() string {
	return filepath.Join(GetPath(), ConfigFileName)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.setDefaultValues()
	return c
}

// setDefaultValues sets default values for the configuration
func (c *Config) setDefaultValues() {
	c.Mode = DefaultMode
	c.OutputPrefix = DefaultOutputPrefix
	c.JPEGQuality = DefaultJPEGQuality
	c.AutoOrient = false
	c.MaxCanvas = Limits{Width: DefaultMaxCanvas, Height: DefaultMaxCanvas}
	c.Presets = clonePresets(builtinPresets)
}

// Load reads the config file at filename, applying defaults for absent keys
// and PASSEPARTOUT_* environment overrides. A missing file is not an error.
func Load(filename string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", DefaultMode)
	v.SetDefault("output_prefix", DefaultOutputPrefix)
	v.SetDefault("jpeg_quality", DefaultJPEGQuality)
	v.SetDefault("auto_orient", false)
	v.SetDefault("max_canvas.width", DefaultMaxCanvas)
	v.SetDefault("max_canvas.height", DefaultMaxCanvas)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config %s: %w", filename, err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", filename, err)
	}

	presets := clonePresets(builtinPresets)
	for name, p := range c.Presets {
		presets[strings.ToLower(name)] = p
	}
	c.Presets = presets
	return c, nil
}

// Preset looks up a preset by name, ignoring case.
func (c *Config) Preset(name string) (Preset, bool) {
	p, ok := c.Presets[strings.ToLower(name)]
	return p, ok
}

// PresetNames returns the names of all known presets, sorted.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clonePresets(src map[string]Preset) map[string]Preset {
	dst := make(map[string]Preset, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
