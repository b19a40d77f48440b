package skybird

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

func TestPipeSpawnPeriod(t *testing.T) {
	lane := NewPipeLane(config.DefaultSkybirdConfig())
	rng := rand.New(rand.NewSource(1))

	for frame := 1; frame < 120; frame++ {
		if lane.TrySpawn(frame, rng) {
			t.Fatalf("spawned at frame %d", frame)
		}
	}
	if !lane.TrySpawn(120, rng) {
		t.Fatal("expected spawn at frame 120")
	}
	if lane.Len() != 1 || lane.Pipes()[0].X != 800 {
		t.Errorf("expected one pipe at the right edge, got %+v", lane.Pipes())
	}
}

func TestPipeGapTopRange(t *testing.T) {
	cfg := config.DefaultSkybirdConfig()
	lane := NewPipeLane(cfg)
	rng := rand.New(rand.NewSource(42))

	minTop, maxTop := cfg.Pipes.MinHeight, cfg.MaxGapTop()
	seenMin, seenMax := math.MaxInt, 0
	for i := 1; i <= 5000; i++ {
		lane.TrySpawn(i*cfg.Pipes.SpawnPeriod, rng)
		top := lane.Pipes()[lane.Len()-1].GapTop
		if top < minTop || top > maxTop {
			t.Fatalf("gap top %d outside [%d, %d]", top, minTop, maxTop)
		}
		seenMin = min(seenMin, top)
		seenMax = max(seenMax, top)
	}
	if seenMin != minTop || seenMax != maxTop {
		t.Errorf("expected both bounds to be reachable, saw [%d, %d]", seenMin, seenMax)
	}
}

func TestPipeScoresOnce(t *testing.T) {
	lane := NewPipeLane(config.DefaultSkybirdConfig())
	lane.pipes = append(lane.pipes, Pipe{X: 45, GapTop: 200})

	// Trailing edge 45+60=105 moves 2 per frame: 103, 101, 99.
	total := 0
	for frame := 1; frame <= 100; frame++ {
		n := lane.Advance(100)
		if n > 0 && frame != 3 {
			t.Errorf("scored on frame %d, expected frame 3", frame)
		}
		total += n
	}
	if total != 1 {
		t.Errorf("pipe scored %d times, expected exactly once", total)
	}
}

func TestPipeRetireFIFO(t *testing.T) {
	cfg := config.DefaultSkybirdConfig()
	lane := NewPipeLane(cfg)
	rng := rand.New(rand.NewSource(7))

	bound := int(math.Ceil(float64(cfg.Canvas.Width)/(cfg.Pipes.Speed*float64(cfg.Pipes.SpawnPeriod)))) + 1
	retired := 0
	for frame := 1; frame <= 10000; frame++ {
		head := Pipe{X: math.Inf(1)}
		if lane.Len() > 0 {
			head = lane.Pipes()[0]
		}
		if n := lane.RetireOffscreen(); n > 0 {
			if head.X >= -float64(cfg.Pipes.Width) {
				t.Fatalf("frame %d: retired a pipe that was still visible", frame)
			}
			retired += n
		}
		lane.Advance(cfg.Bird.X)
		lane.TrySpawn(frame, rng)

		pipes := lane.Pipes()
		for i := 1; i < len(pipes); i++ {
			if pipes[i-1].X >= pipes[i].X {
				t.Fatalf("frame %d: pipes out of creation order", frame)
			}
		}
		if len(pipes) > bound {
			t.Fatalf("frame %d: %d live pipes, bound is %d", frame, len(pipes), bound)
		}
	}
	if retired == 0 {
		t.Error("expected pipes to be retired")
	}
}

func TestPipeLaneEmptyNoops(t *testing.T) {
	lane := NewPipeLane(config.DefaultSkybirdConfig())
	if lane.Advance(100) != 0 || lane.RetireOffscreen() != 0 {
		t.Error("empty lane should do nothing")
	}
	if lane.Collides(core.Circle{X: 100, Y: 300, R: 15}) {
		t.Error("empty lane should not collide")
	}
}

func TestPipeCollides(t *testing.T) {
	lane := NewPipeLane(config.DefaultSkybirdConfig())
	lane.pipes = append(lane.pipes, Pipe{X: 100, GapTop: 200}) // gap spans 200..380

	tests := []struct {
		name string
		c    core.Circle
		want bool
	}{
		{"inside gap", core.Circle{X: 130, Y: 290, R: 15}, false},
		{"clips top segment", core.Circle{X: 130, Y: 210, R: 15}, true},
		{"clips bottom segment", core.Circle{X: 130, Y: 370, R: 15}, true},
		{"left of pipe", core.Circle{X: 80, Y: 100, R: 15}, false},
		{"touching left edge", core.Circle{X: 85, Y: 100, R: 15}, false},
		{"overlapping left edge", core.Circle{X: 86, Y: 100, R: 15}, true},
		{"right of pipe", core.Circle{X: 180, Y: 100, R: 15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lane.Collides(tt.c); got != tt.want {
				t.Errorf("Collides(%+v) = %v, expected %v", tt.c, got, tt.want)
			}
		})
	}
}
