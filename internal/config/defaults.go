package config

import (
	_ "embed"
)

//go:embed defaults/skybird.yaml
var defaultSkybirdYAML []byte

// DefaultSkybirdConfig returns the default skybird configuration.
func DefaultSkybirdConfig() SkybirdConfig {
	return SkybirdConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Bird: BirdConfig{
			X:             100,
			StartY:        300,
			Radius:        15,
			Gravity:       0.3,
			Damping:       0.95,
			MinLift:       -6,
			MaxLift:       -12,
			MaxChargeTime: 25,
			FlashFrames:   10,
		},
		Pipes: PipesConfig{
			Width:       60,
			Gap:         180,
			SpawnPeriod: 120,
			Speed:       2,
			MinHeight:   70,
		},
		PowerUps: PowerUpConfig{
			Enabled:          true,
			SpawnChance:      0.01,
			MaxLive:          2,
			Size:             30,
			Speed:            2,
			Margin:           25,
			Spin:             0.05,
			InvincibleFrames: 300,
		},
		Coins: CoinConfig{
			Enabled:      true,
			SpawnChance:  0.03,
			MaxLive:      5,
			Radius:       10,
			Speed:        2,
			Margin:       15,
			MinValue:     1,
			MaxValue:     3,
			MagnetPull:   0.1,
			AbsorbRadius: 5,
			Spin:         0.1,
		},
		Hazards: HazardConfig{
			Enabled:     true,
			SpawnChance: 0.005,
			MaxLive:     2,
			Size:        40,
			MinSpeed:    1,
			MaxSpeed:    3,
			Margin:      50,
		},
		World: WorldConfig{
			DayNight:      true,
			NightPeriod:   1000,
			ParallaxSpeed: 0.5,
		},
	}
}
