package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     1.2,
			JumpImpulse: 25,
			ScrollSpeed: 1,
		},
		Obstacles: FlappyObstacles{
			Width:          52,
			Height:         242,
			Gap:            100,
			SpawnX:         288,
			FirstSpawnX:    260,
			TopMin:         -200,
			TopMax:         0,
			SpawnThreshold: 120,
			MaxLive:        2,
			ScoreLine:      24,
		},
		Player: FlappyPlayer{
			X:      25,
			Y:      150,
			Sprite: "kps",
		},
		Field: FlappyField{
			Width:      288,
			Height:     512,
			Background: "bg2",
			Ground:     "fg2",
			PipeTop:    "pipeTop2",
			PipeBottom: "pipeBottom2",
			ScoreX:     10,
			ScoreY:     485,
			HintX:      80,
			HintY:      505,
		},
		Assets: AssetsConfig{
			LoadTimeout: 5 * time.Second,
		},
	}
}
