package config

import (
	"errors"
	"fmt"
	"os"

	"quadcraft/internal/meshing"
	"quadcraft/internal/world"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "QUADCRAFT_CONFIG"

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Terrain     TerrainConfig     `yaml:"terrain"`
	Interaction InteractionConfig `yaml:"interaction"`
	Meshing     MeshingConfig     `yaml:"meshing"`
	Assets      AssetsConfig      `yaml:"assets"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Debug       DebugConfig       `yaml:"debug"`
}

type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	// FPSLimit caps the frame rate when vsync is off; 0 is unlimited.
	FPSLimit   int  `yaml:"fps_limit"`
}

type CameraConfig struct {
	FOV         float32 `yaml:"fov"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	Sensitivity float32 `yaml:"sensitivity"`
	MoveSpeed   float32 `yaml:"move_speed"`
}

type TerrainConfig struct {
	Surface      int `yaml:"surface"`
	StoneCeiling int `yaml:"stone_ceiling"`
}

// Settings converts to the generator's thresholds.
func (t TerrainConfig) Settings() world.TerrainSettings {
	return world.TerrainSettings{Surface: t.Surface, StoneCeiling: t.StoneCeiling}
}

type InteractionConfig struct {
	InitialBlock string `yaml:"initial_block"`
}

// MeshingConfig selects the face policy and how rebuilds are scheduled.
// Workers == 0 meshes synchronously on the main loop.
type MeshingConfig struct {
	FacePolicy string `yaml:"face_policy"`
	Workers    int    `yaml:"workers"`
}

type AssetsConfig struct {
	Root string `yaml:"root"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type DebugConfig struct {
	LogBufferUsage bool `yaml:"log_buffer_usage"`
	Wireframe      bool `yaml:"wireframe"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, VSync: true},
		Camera: CameraConfig{
			FOV:         90,
			Near:        0.1,
			Far:         1000,
			Sensitivity: 0.25,
			MoveSpeed:   5,
		},
		Terrain: TerrainConfig{
			Surface:      world.DefaultTerrain.Surface,
			StoneCeiling: world.DefaultTerrain.StoneCeiling,
		},
		Interaction: InteractionConfig{InitialBlock: world.BlockTypeStone.String()},
		Meshing:     MeshingConfig{FacePolicy: meshing.FaceIfEmpty.String()},
		Assets:      AssetsConfig{Root: "res"},
		Debug:       DebugConfig{LogBufferUsage: true},
	}
}

// Load reads a YAML file on top of Default. An empty path falls back to
// $QUADCRAFT_CONFIG; if that is unset too the defaults are returned.
// The result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", describe(path), err)
	}
	return cfg, nil
}

func describe(path string) string {
	if path == "" {
		return "<defaults>"
	}
	return path
}

// Validate checks ranges and that names resolve.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("window fps_limit %d must not be negative", c.Window.FPSLimit))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v out of range (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%v far=%v invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity %v must be positive", c.Camera.Sensitivity))
	}
	if c.Camera.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("camera move_speed %v must not be negative", c.Camera.MoveSpeed))
	}
	if err := c.Terrain.Settings().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.InitialBlock(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.FacePolicy(); err != nil {
		errs = append(errs, err)
	}
	if c.Meshing.Workers < 0 {
		errs = append(errs, fmt.Errorf("meshing workers %d must not be negative", c.Meshing.Workers))
	}
	if c.Assets.Root == "" {
		errs = append(errs, errors.New("assets root is empty"))
	}

	return errors.Join(errs...)
}

// InitialBlock resolves interaction.initial_block.
func (c *Config) InitialBlock() (world.BlockType, error) {
	bt, err := world.ParseBlockType(c.Interaction.InitialBlock)
	if err != nil {
		return world.BlockTypeAir, fmt.Errorf("interaction initial_block: %w", err)
	}
	return bt, nil
}

// FacePolicy resolves meshing.face_policy.
func (c *Config) FacePolicy() (meshing.FacePolicy, error) {
	p, err := meshing.ParseFacePolicy(c.Meshing.FacePolicy)
	if err != nil {
		return meshing.FaceIfEmpty, fmt.Errorf("meshing face_policy: %w", err)
	}
	return p, nil
}
