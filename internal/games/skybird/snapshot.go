package skybird

// Snapshot is a flat copy of the observable session state.
// Used by the headless simulator and by determinism tests.
type Snapshot struct {
	Frame          int     `yaml:"frame"`
	Phase          string  `yaml:"phase"`
	Score          int     `yaml:"score"`
	CoinScore      int     `yaml:"coin_score"`
	BirdY          float64 `yaml:"bird_y"`
	BirdVelocity   float64 `yaml:"bird_velocity"`
	ChargeTime     int     `yaml:"charge_time"`
	Invincible     bool    `yaml:"invincible"`
	InvincibleLeft int     `yaml:"invincible_left"`
	Night          bool    `yaml:"night"`
	Pipes          int     `yaml:"pipes"`
	NextGapTop     int     `yaml:"next_gap_top"` // Gap top of the first pipe not yet passed, -1 if none
	PowerUps       int     `yaml:"power_ups"`
	Coins          int     `yaml:"coins"`
	Hazards        int     `yaml:"hazards"`
	Crash          string  `yaml:"crash,omitempty"`
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:          s.frame,
		Phase:          s.phase.String(),
		Score:          s.score,
		CoinScore:      s.coinScore,
		BirdY:          s.bird.Y,
		BirdVelocity:   s.bird.Velocity,
		ChargeTime:     s.bird.ChargeTime,
		Invincible:     s.Invincible(),
		InvincibleLeft: s.invincibleLeft,
		Night:          s.env.Night,
		Pipes:          s.pipes.Len(),
		NextGapTop:     -1,
		PowerUps:       s.powerUps.Len(),
		Coins:          s.coins.Len(),
		Hazards:        s.hazards.Len(),
	}
	if p, ok := s.nextPipe(); ok {
		snap.NextGapTop = p.GapTop
	}
	if s.crash != CrashNone {
		snap.Crash = s.crash.String()
	}
	return snap
}

// nextPipe returns the oldest pipe the bird has not passed yet.
func (s *Session) nextPipe() (Pipe, bool) {
	for _, p := range s.pipes.Pipes() {
		if !p.Passed {
			return p, true
		}
	}
	return Pipe{}, false
}
