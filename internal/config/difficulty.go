package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// presetScaling describes how a preset bends the loaded values.
// Scaling is relative so presets compose with a user's own config file.
type presetScaling struct {
	gapDelta     int     // Added to pipes.gap
	speedFactor  float64 // Multiplies pipes, power-up and coin speed
	hazardFactor float64 // Multiplies hazards.spawn_chance
}

var presetTable = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {gapDelta: 30, speedFactor: 0.85, hazardFactor: 0.5},
	DifficultyNormal: {gapDelta: 0, speedFactor: 1, hazardFactor: 1},
	DifficultyHard:   {gapDelta: -30, speedFactor: 1.25, hazardFactor: 2},
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presetTable[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard): %w", s, ErrInvalidConfig)
	}
	return p, nil
}

// ApplySkybirdPreset modifies the config based on a difficulty preset.
// Entity speeds move together so pickups keep pace with the pipes.
// The result is validated again since a preset can push a value out of range.
func ApplySkybirdPreset(cfg *SkybirdConfig, preset DifficultyPreset) error {
	sc, ok := presetTable[preset]
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q: %w", preset, ErrInvalidConfig)
	}

	cfg.Pipes.Gap += sc.gapDelta
	cfg.Pipes.Speed = round2(cfg.Pipes.Speed * sc.speedFactor)
	cfg.PowerUps.Speed = round2(cfg.PowerUps.Speed * sc.speedFactor)
	cfg.Coins.Speed = round2(cfg.Coins.Speed * sc.speedFactor)
	cfg.Hazards.SpawnChance = math.Min(1, cfg.Hazards.SpawnChance*sc.hazardFactor)

	return cfg.Validate()
}

// round2 keeps preset-scaled speeds at two decimals so snapshots stay readable.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
