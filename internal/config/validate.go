package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a session.
// All violations are reported together.
func (c SkybirdConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas: size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)

	b := c.Bird
	check(b.Radius > 0, "bird.radius must be positive, got %v", b.Radius)
	check(b.StartY >= 0 && b.StartY+b.Radius <= float64(c.Canvas.Height), "bird.start_y %v must keep the bird on the canvas", b.StartY)
	check(b.X >= 0 && b.X <= float64(c.Canvas.Width), "bird.x %v must lie on the canvas", b.X)
	check(b.Damping > 0 && b.Damping < 1, "bird.damping must be in (0, 1), got %v", b.Damping)
	check(b.MinLift < 0 && b.MaxLift < 0, "bird lifts must be negative (upward), got min %v max %v", b.MinLift, b.MaxLift)
	check(b.MaxLift <= b.MinLift, "bird.max_lift %v must be at least as strong as min_lift %v", b.MaxLift, b.MinLift)
	check(b.MaxChargeTime > 0, "bird.max_charge_time must be positive, got %d", b.MaxChargeTime)
	check(b.FlashFrames > 0, "bird.flash_frames must be positive, got %d", b.FlashFrames)

	p := c.Pipes
	check(p.Width > 0, "pipes.width must be positive, got %d", p.Width)
	check(p.Gap > 2*int(b.Radius), "pipes.gap %d must fit the bird", p.Gap)
	check(p.SpawnPeriod > 0, "pipes.spawn_period must be positive, got %d", p.SpawnPeriod)
	check(p.Speed > 0, "pipes.speed must be positive, got %v", p.Speed)
	check(p.MinHeight >= 0, "pipes.min_height must not be negative, got %d", p.MinHeight)
	check(c.MaxGapTop() >= p.MinHeight, "pipes: gap %d with min_height %d does not fit a %d tall canvas", p.Gap, p.MinHeight, c.Canvas.Height)

	if c.PowerUps.Enabled {
		u := c.PowerUps
		check(validChance(u.SpawnChance), "power_ups.spawn_chance must be in [0, 1], got %v", u.SpawnChance)
		check(u.MaxLive >= 0, "power_ups.max_live must not be negative, got %d", u.MaxLive)
		check(u.Size > 0 && u.Speed > 0, "power_ups: size and speed must be positive")
		check(2*u.Margin < float64(c.Canvas.Height), "power_ups.margin %v leaves no room on the canvas", u.Margin)
		check(u.InvincibleFrames > 0, "power_ups.invincible_frames must be positive, got %d", u.InvincibleFrames)
	}

	if c.Coins.Enabled {
		k := c.Coins
		check(validChance(k.SpawnChance), "coins.spawn_chance must be in [0, 1], got %v", k.SpawnChance)
		check(k.MaxLive >= 0, "coins.max_live must not be negative, got %d", k.MaxLive)
		check(k.Radius > 0 && k.Speed > 0, "coins: radius and speed must be positive")
		check(2*k.Margin < float64(c.Canvas.Height), "coins.margin %v leaves no room on the canvas", k.Margin)
		check(k.MinValue > 0 && k.MaxValue >= k.MinValue, "coins: value range [%d, %d] is invalid", k.MinValue, k.MaxValue)
		check(k.MagnetPull > 0 && k.MagnetPull <= 1, "coins.magnet_pull must be in (0, 1], got %v", k.MagnetPull)
		check(k.AbsorbRadius >= 0, "coins.absorb_radius must not be negative, got %v", k.AbsorbRadius)
	}

	if c.Hazards.Enabled {
		h := c.Hazards
		check(validChance(h.SpawnChance), "hazards.spawn_chance must be in [0, 1], got %v", h.SpawnChance)
		check(h.MaxLive >= 0, "hazards.max_live must not be negative, got %d", h.MaxLive)
		check(h.Size > 0, "hazards.size must be positive, got %v", h.Size)
		check(h.MinSpeed > 0 && h.MaxSpeed >= h.MinSpeed, "hazards: speed range [%v, %v] is invalid", h.MinSpeed, h.MaxSpeed)
		check(2*h.Margin < float64(c.Canvas.Height), "hazards.margin %v leaves no room on the canvas", h.Margin)
	}

	if c.World.DayNight {
		check(c.World.NightPeriod > 0, "world.night_period must be positive, got %d", c.World.NightPeriod)
	}
	check(c.World.ParallaxSpeed >= 0, "world.parallax_speed must not be negative, got %v", c.World.ParallaxSpeed)

	return errors.Join(errs...)
}

func validChance(p float64) bool {
	return p >= 0 && p <= 1
}
