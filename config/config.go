// Package config loads editor settings from an optional yaml file and
// VENOM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"venom-editor/input"
)

// Config holds application configuration.
type Config struct {
	Window  WindowConfig  `mapstructure:"window" yaml:"window"`
	Camera  CameraConfig  `mapstructure:"camera" yaml:"camera"`
	Keys    KeysConfig    `mapstructure:"keys" yaml:"keys"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

type WindowConfig struct {
	Title      string     `mapstructure:"title" yaml:"title"`
	Width      int        `mapstructure:"width" yaml:"width"`
	Height     int        `mapstructure:"height" yaml:"height"`
	Samples    int        `mapstructure:"samples" yaml:"samples"`
	VSync      bool       `mapstructure:"vsync" yaml:"vsync"`
	Resizable  bool       `mapstructure:"resizable" yaml:"resizable"`
	ClearColor [4]float32 `mapstructure:"clear_color" yaml:"clear_color,flow"`
}

type CameraConfig struct {
	MoveSpeed   float32 `mapstructure:"move_speed" yaml:"move_speed"`
	Sensitivity float32 `mapstructure:"sensitivity" yaml:"sensitivity"`
	FOV         float32 `mapstructure:"fov" yaml:"fov"` // degrees
}

// KeysConfig maps camera actions to key names understood by input.ParseKey.
type KeysConfig struct {
	Forward string `mapstructure:"forward" yaml:"forward"`
	Back    string `mapstructure:"back" yaml:"back"`
	Left    string `mapstructure:"left" yaml:"left"`
	Right   string `mapstructure:"right" yaml:"right"`
	Up      string `mapstructure:"up" yaml:"up"`
	Down    string `mapstructure:"down" yaml:"down"`
	Boost   string `mapstructure:"boost" yaml:"boost"`
}

// ExportConfig names the glTF export target and the editor's own scene file.
type ExportConfig struct {
	Path      string `mapstructure:"path" yaml:"path"`
	ScenePath string `mapstructure:"scene_path" yaml:"scene_path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Bindings is KeysConfig resolved to key codes.
type Bindings struct {
	Forward, Back, Left, Right, Up, Down, Boost input.Key
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:      "Venom Example",
			Width:      1280,
			Height:     720,
			Samples:    8,
			VSync:      true,
			Resizable:  true,
			ClearColor: [4]float32{0.12, 0.12, 0.14, 1},
		},
		Camera: CameraConfig{MoveSpeed: 0.1, Sensitivity: 0.003, FOV: 35},
		Keys: KeysConfig{
			Forward: "W", Back: "S", Left: "A", Right: "D",
			Up: "E", Down: "Q", Boost: "LeftShift",
		},
		Export:  ExportConfig{Path: "scene.gltf", ScenePath: "scene.venom.json"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.samples", d.Window.Samples)
	v.SetDefault("window.vsync", d.Window.VSync)
	v.SetDefault("window.resizable", d.Window.Resizable)
	v.SetDefault("window.clear_color", d.Window.ClearColor[:])
	v.SetDefault("camera.move_speed", d.Camera.MoveSpeed)
	v.SetDefault("camera.sensitivity", d.Camera.Sensitivity)
	v.SetDefault("camera.fov", d.Camera.FOV)
	v.SetDefault("keys.forward", d.Keys.Forward)
	v.SetDefault("keys.back", d.Keys.Back)
	v.SetDefault("keys.left", d.Keys.Left)
	v.SetDefault("keys.right", d.Keys.Right)
	v.SetDefault("keys.up", d.Keys.Up)
	v.SetDefault("keys.down", d.Keys.Down)
	v.SetDefault("keys.boost", d.Keys.Boost)
	v.SetDefault("export.path", d.Export.Path)
	v.SetDefault("export.scene_path", d.Export.ScenePath)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Load reads configuration. An empty path falls back to VENOM_CONFIG, then
// to venom.yaml in the working directory or ~/.config/venom. A missing file
// is only an error when it was named explicitly. Env vars such as
// VENOM_WINDOW_WIDTH override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv("VENOM_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("venom")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "venom"))
		}
	}

	v.SetEnvPrefix("VENOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges and key names.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("window.samples %d must not be negative", c.Window.Samples))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov %v must be in (0, 180)", c.Camera.FOV))
	}
	if c.Export.Path == "" || c.Export.ScenePath == "" {
		errs = append(errs, errors.New("export.path and export.scene_path must be set"))
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Bindings resolves every key name, reporting all bad names at once.
func (c Config) Bindings() (Bindings, error) {
	var b Bindings
	var errs []error
	parse := func(action, name string, dst *input.Key) {
		k, err := input.ParseKey(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", action, err))
			return
		}
		*dst = k
	}
	parse("forward", c.Keys.Forward, &b.Forward)
	parse("back", c.Keys.Back, &b.Back)
	parse("left", c.Keys.Left, &b.Left)
	parse("right", c.Keys.Right, &b.Right)
	parse("up", c.Keys.Up, &b.Up)
	parse("down", c.Keys.Down, &b.Down)
	parse("boost", c.Keys.Boost, &b.Boost)
	return b, errors.Join(errs...)
}

// WriteDefault writes the built-in configuration as yaml to path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
