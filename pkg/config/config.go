package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/chasedrive/pkg/camera"
	"github.com/golangdaddy/chasedrive/pkg/vehicle"
	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "chasedrive.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. CHASEDRIVE_PHYSICS_MAXSPEED.
const EnvPrefix = "CHASEDRIVE"

// Window describes the game window and logical screen.
type Window struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// Input selects device bindings.
type Input struct {
	// GamepadLayout is "stick" or "triggers".
	GamepadLayout string `mapstructure:"gamepadLayout"`
}

// Config is everything the game reads at startup.
type Config struct {
	LogLevel string `mapstructure:"logLevel"`

	// FrameDelta is the dt handed to the simulation every frame. 1 moves
	// the car by its speed each frame; 1/60 makes speed per second.
	FrameDelta float64 `mapstructure:"frameDelta"`

	Window  Window          `mapstructure:"window"`
	Input   Input           `mapstructure:"input"`
	Physics vehicle.Physics `mapstructure:"physics"`
	Camera  camera.Config   `mapstructure:"camera"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("frameDelta", 1.0)
	v.SetDefault("input.gamepadLayout", "stick")

	v.SetDefault("window.title", "Chase Drive")
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 600)

	p := vehicle.DefaultPhysics()
	v.SetDefault("physics.acceleration", p.Acceleration)
	v.SetDefault("physics.reverseAcceleration", p.ReverseAcceleration)
	v.SetDefault("physics.friction", p.Friction)
	v.SetDefault("physics.brakingForce", p.BrakingForce)
	v.SetDefault("physics.maxSpeed", p.MaxSpeed)
	v.SetDefault("physics.maxReverseSpeed", p.MaxReverseSpeed)
	v.SetDefault("physics.turnSpeed", p.TurnSpeed)
	v.SetDefault("physics.minSpeedForTurn", p.MinSpeedForTurn)

	c := camera.DefaultConfig()
	v.SetDefault("camera.offset", []float64{c.Offset.X(), c.Offset.Y(), c.Offset.Z()})
	v.SetDefault("camera.lookAhead", c.LookAhead)
	v.SetDefault("camera.positionLerp", c.PositionLerp)
	v.SetDefault("camera.rotationLerp", c.RotationLerp)
	v.SetDefault("camera.followHeading", c.FollowHeading)
}

// Load reads configuration from dir. The config file is optional; a file
// that exists but cannot be parsed is an error, as are physics values the
// driving model cannot work with.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Physics.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics: %w", err)
	}
	if cfg.Camera.PositionLerp <= 0 || cfg.Camera.PositionLerp > 1 ||
		cfg.Camera.RotationLerp <= 0 || cfg.Camera.RotationLerp > 1 {
		return nil, fmt.Errorf("camera lerp factors must be in (0,1], got %v and %v",
			cfg.Camera.PositionLerp, cfg.Camera.RotationLerp)
	}
	switch cfg.Input.GamepadLayout {
	case "stick", "triggers":
	default:
		return nil, fmt.Errorf("unknown gamepad layout %q", cfg.Input.GamepadLayout)
	}
	return cfg, nil
}

// Default is Load without a config directory: defaults plus environment.
// It panics when the environment holds values Load rejects.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}
