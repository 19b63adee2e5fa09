// Package config provides YAML-based game configuration loading and
// environment overrides for the CLI.
package config

import "time"

// FlappyConfig contains all tunables for a flappy session.
// Distances are world units (pixels of the 288x512 play field); one frame
// is one simulation step.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics" toml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles" toml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player" toml:"player"`
	Field     FlappyField     `yaml:"field" toml:"field"`
	Assets    AssetsConfig    `yaml:"assets" toml:"assets"`
}

// FlappyPhysics defines per-frame displacements.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`           // Added to player y every frame
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // Subtracted from player y on jump
	ScrollSpeed float64 `yaml:"scroll_speed" toml:"scroll_speed"` // Obstacle x decrement per frame
}

// FlappyObstacles defines pipe pair geometry and the spawn/recycle policy.
type FlappyObstacles struct {
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
	Gap            float64 `yaml:"pipe_gap" toml:"pipe_gap"`
	SpawnX         float64 `yaml:"spawn_x" toml:"spawn_x"`
	FirstSpawnX    float64 `yaml:"first_spawn_x" toml:"first_spawn_x"`
	TopMin         int     `yaml:"top_min" toml:"top_min"` // yTop is drawn from [TopMin, TopMax)
	TopMax         int     `yaml:"top_max" toml:"top_max"`
	SpawnThreshold float64 `yaml:"spawn_threshold" toml:"spawn_threshold"`
	MaxLive        int     `yaml:"max_live" toml:"max_live"`
	ScoreLine      float64 `yaml:"score_line" toml:"score_line"`
}

// FlappyPlayer defines the player's spawn point and sprite.
type FlappyPlayer struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Sprite string  `yaml:"sprite" toml:"sprite"`
}

// FlappyField defines the play field and the sprites drawn on it.
type FlappyField struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Background string  `yaml:"background" toml:"background"`
	Ground     string  `yaml:"ground" toml:"ground"`
	PipeTop    string  `yaml:"pipe_top" toml:"pipe_top"`
	PipeBottom string  `yaml:"pipe_bottom" toml:"pipe_bottom"`
	ScoreX     float64 `yaml:"score_x" toml:"score_x"`
	ScoreY     float64 `yaml:"score_y" toml:"score_y"`
	HintX      float64 `yaml:"hint_x" toml:"hint_x"`
	HintY      float64 `yaml:"hint_y" toml:"hint_y"`
}

// AssetsConfig controls where sprites and sounds come from.
type AssetsConfig struct {
	Dir         string        `yaml:"dir" toml:"dir"` // Empty means the embedded set
	LoadTimeout time.Duration `yaml:"load_timeout" toml:"load_timeout"`
}

// ImageNames returns every sprite a session needs, in load order.
func (c FlappyConfig) ImageNames() []string {
	return []string{
		c.Field.Background,
		c.Field.Ground,
		c.Field.PipeBottom,
		c.Field.PipeTop,
		c.Player.Sprite,
	}
}
