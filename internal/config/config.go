// Package config provides YAML-based configuration loading and
// difficulty presets for the skybird simulation.
package config

// SkybirdConfig contains every tunable of the simulation core.
type SkybirdConfig struct {
	Canvas   CanvasConfig  `yaml:"canvas"`
	Bird     BirdConfig    `yaml:"bird"`
	Pipes    PipesConfig   `yaml:"pipes"`
	PowerUps PowerUpConfig `yaml:"power_ups"`
	Coins    CoinConfig    `yaml:"coins"`
	Hazards  HazardConfig  `yaml:"hazards"`
	World    WorldConfig   `yaml:"world"`
}

// CanvasConfig defines the logical playfield in canvas units.
// The renderer scales it onto whatever terminal is available.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BirdConfig defines the actor's kinematics and charge model.
type BirdConfig struct {
	X             float64 `yaml:"x"`
	StartY        float64 `yaml:"start_y"`
	Radius        float64 `yaml:"radius"`
	Gravity       float64 `yaml:"gravity"`
	Damping       float64 `yaml:"damping"`
	MinLift       float64 `yaml:"min_lift"` // Impulse for the shortest charge (negative = up)
	MaxLift       float64 `yaml:"max_lift"` // Impulse for a full charge
	MaxChargeTime int     `yaml:"max_charge_time"`
	FlashFrames   int     `yaml:"flash_frames"`
}

// PipesConfig defines the obstacle lane.
type PipesConfig struct {
	Width       int     `yaml:"width"`
	Gap         int     `yaml:"gap"`
	SpawnPeriod int     `yaml:"spawn_period"` // Frames between spawns
	Speed       float64 `yaml:"speed"`
	MinHeight   int     `yaml:"min_height"` // Minimum pipe segment height above and below the gap
}

// PowerUpConfig defines the power-up pool.
type PowerUpConfig struct {
	Enabled          bool    `yaml:"enabled"`
	SpawnChance      float64 `yaml:"spawn_chance"`
	MaxLive          int     `yaml:"max_live"`
	Size             float64 `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	Margin           float64 `yaml:"margin"`
	Spin             float64 `yaml:"spin"`
	InvincibleFrames int     `yaml:"invincible_frames"`
}

// CoinConfig defines the coin pool.
type CoinConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SpawnChance  float64 `yaml:"spawn_chance"`
	MaxLive      int     `yaml:"max_live"`
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	Margin       float64 `yaml:"margin"`
	MinValue     int     `yaml:"min_value"`
	MaxValue     int     `yaml:"max_value"`
	MagnetPull   float64 `yaml:"magnet_pull"`   // Fraction of the remaining distance closed per frame
	AbsorbRadius float64 `yaml:"absorb_radius"` // Magnetized coins closer than this are collected
	Spin         float64 `yaml:"spin"`
}

// HazardConfig defines the hazard pool.
type HazardConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SpawnChance float64 `yaml:"spawn_chance"`
	MaxLive     int     `yaml:"max_live"`
	Size        float64 `yaml:"size"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Margin      float64 `yaml:"margin"`
}

// WorldConfig defines background behavior.
type WorldConfig struct {
	DayNight      bool    `yaml:"day_night"`
	NightPeriod   int     `yaml:"night_period"`
	ParallaxSpeed float64 `yaml:"parallax_speed"`
}

// Classic returns a copy of the config with every optional feature switched
// off: only the bird and the pipes remain.
func (c SkybirdConfig) Classic() SkybirdConfig {
	c.PowerUps.Enabled = false
	c.Coins.Enabled = false
	c.Hazards.Enabled = false
	c.World.DayNight = false
	return c
}

// MaxGapTop returns the largest gap-top a pipe may be spawned with.
func (c SkybirdConfig) MaxGapTop() int {
	return c.Canvas.Height - c.Pipes.MinHeight - c.Pipes.Gap
}
