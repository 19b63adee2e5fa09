package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the session configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// A customPath ending in .toml is decoded as TOML, anything else as YAML.
// Files are decoded on top of the defaults, so a partial file only overrides the keys it sets.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, err := loadFlappy(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFlappy(customPath string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultFlappyConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultFlappyConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *FlappyConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to a user config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// Validate reports every setting that would break the simulation.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.jump_impulse", c.Physics.JumpImpulse)
	positive("physics.scroll_speed", c.Physics.ScrollSpeed)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	positive("obstacles.pipe_gap", c.Obstacles.Gap)
	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)

	if c.Obstacles.TopMin >= c.Obstacles.TopMax {
		errs = append(errs, fmt.Errorf("obstacles.top_min (%d) must be below top_max (%d)",
			c.Obstacles.TopMin, c.Obstacles.TopMax))
	}
	if c.Obstacles.MaxLive < 1 {
		errs = append(errs, fmt.Errorf("obstacles.max_live must be at least 1, got %d", c.Obstacles.MaxLive))
	}
	if c.Player.X < 0 || c.Player.X >= c.Field.Width || c.Player.Y < 0 || c.Player.Y >= c.Field.Height {
		errs = append(errs, fmt.Errorf("player spawn (%g, %g) is outside the field", c.Player.X, c.Player.Y))
	}
	for _, name := range c.ImageNames() {
		if name == "" {
			errs = append(errs, errors.New("every sprite name (field.*, player.sprite) must be set"))
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
