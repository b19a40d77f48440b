package audio

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/skybird/internal/core"
)

// Player writes pre-rendered cues to an audio backend from one goroutine.
// A nil *Player is valid and silent, so callers never need to check.
type Player struct {
	out     io.WriteCloser
	cmd     *exec.Cmd
	backend string
	logger  *log.Logger

	cache [cueCount][]byte
	queue chan Cue
	done  chan struct{}

	closed  atomic.Bool
	once    sync.Once
	wg      sync.WaitGroup
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewPlayer detects a backend, starts it and returns a running player.
// Volume is linear in [0, 1]. ErrNoAudioBackend means the system has no
// usable player; callers should carry on without sound.
func NewPlayer(volume float64, logger *log.Logger) (*Player, error) {
	backend, err := DetectBackend()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("audio: %s stdin: %w", backend.Name, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("audio: start %s: %w", backend.Name, err)
	}

	p := newPlayer(stdin, volume, logger)
	p.cmd = cmd
	p.backend = backend.Name
	return p, nil
}

// newPlayer builds a player around any writer and starts its loop.
func newPlayer(out io.WriteCloser, volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		out:     out,
		backend: "writer",
		logger:  logger,
		queue:   make(chan Cue, 16),
		done:    make(chan struct{}),
	}

	gain := max(0, min(1, volume))
	for c := Cue(0); c < cueCount; c++ {
		p.cache[c] = Render(CueStreamer(c, beep.SampleRate(SampleRate)), gain)
	}

	p.wg.Add(1)
	go p.loop()
	return p
}

// Backend returns the name of the audio player in use.
func (p *Player) Backend() string {
	if p == nil {
		return "none"
	}
	return p.backend
}

// Play queues a cue. It never blocks: when the queue is full the cue is dropped.
func (p *Player) Play(c Cue) {
	if p == nil || p.closed.Load() || c < 0 || c >= cueCount {
		return
	}
	select {
	case p.queue <- c:
	default:
		p.dropped.Add(1)
	}
}

// PlayEvents queues the cue of every event that has one.
func (p *Player) PlayEvents(events []core.Event) {
	for _, e := range events {
		if c, ok := CueForEvent(e); ok {
			p.Play(c)
		}
	}
}

// Stats returns how many cues were written and how many were dropped.
func (p *Player) Stats() (played, dropped uint64) {
	if p == nil {
		return 0, 0
	}
	return p.played.Load(), p.dropped.Load()
}

func (p *Player) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case c := <-p.queue:
			if _, err := p.out.Write(p.cache[c]); err != nil {
				select {
				case <-p.done:
				default:
					p.logger.Warn("audio output failed, sound disabled", "backend", p.backend, "err", err)
				}
				p.closed.Store(true)
				return
			}
			p.played.Add(1)
		}
	}
}

// Close stops the loop and the backend process. Safe to call more than once.
// The output is closed before waiting on the loop so a write stuck on a
// stalled backend fails instead of blocking shutdown.
func (p *Player) Close() error {
	if p == nil {
		return nil
	}
	var err error
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.done)

		err = p.out.Close()
		if p.cmd != nil && p.cmd.Process != nil {
			_ = p.cmd.Process.Kill()
		}
		p.wg.Wait()

		if p.cmd != nil {
			if werr := p.cmd.Wait(); werr != nil && !errors.Is(werr, io.ErrClosedPipe) {
				p.logger.Debug("audio backend exited", "backend", p.backend, "err", werr)
			}
		}
	})
	return err
}
