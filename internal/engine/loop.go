package engine

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Loop is a fixed-timestep scheduler. Each rendered frame feeds it the
// wall-clock time; it runs as many whole simulation ticks as have
// accumulated, then draws once.
type Loop struct {
	frameSize   time.Duration
	maxTicks    int
	accumulated time.Duration
	last        time.Time
	rate        FrameRate
	logger      *log.Logger

	// ShowFrameRate draws the frame-rate counter after every frame.
	ShowFrameRate bool
}

// NewLoop creates a loop running tickRate ticks per second. A frame never
// runs more than maxTicks ticks; older backlog is dropped. logger may be nil.
func NewLoop(tickRate, maxTicks int, logger *log.Logger) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxTicks <= 0 {
		maxTicks = 1
	}
	return &Loop{
		frameSize: time.Second / time.Duration(tickRate),
		maxTicks:  maxTicks,
		logger:    logger,
	}
}

// FrameSize returns the simulated duration of one tick.
func (l *Loop) FrameSize() time.Duration {
	return l.frameSize
}

// Advance records a frame at now and returns how many ticks to run.
// The first call only starts the clock.
func (l *Loop) Advance(now time.Time) int {
	if l.last.IsZero() {
		l.last = now
		return 0
	}

	frameTime := now.Sub(l.last)
	l.last = now
	if frameTime < 0 {
		frameTime = 0
	}
	l.rate.Record(frameTime)
	l.accumulated += frameTime

	ticks := 0
	for l.accumulated > l.frameSize {
		l.accumulated -= l.frameSize
		ticks++
	}

	if ticks > l.maxTicks {
		if l.logger != nil {
			l.logger.Debug("dropping tick backlog", "ticks", ticks, "max", l.maxTicks)
		}
		ticks = l.maxTicks
		l.accumulated = 0
	}
	return ticks
}

// Frame advances the clock, updates game once per due tick and draws it.
// It returns the number of ticks run.
func (l *Loop) Frame(now time.Time, game Game, keys *core.KeyState, r Renderer) int {
	ticks := l.Advance(now)
	for i := 0; i < ticks; i++ {
		game.Update(keys)
	}
	game.Draw(r)
	if l.ShowFrameRate {
		DrawFrameRate(r, l.rate.Rate())
	}
	return ticks
}

// FrameRate returns the loop's frame-rate counter.
func (l *Loop) FrameRate() *FrameRate {
	return &l.rate
}

// FrameRate counts rendered frames over one-second windows.
type FrameRate struct {
	frames int
	total  time.Duration
	rate   int
}

// Record adds one frame that took frameTime.
func (f *FrameRate) Record(frameTime time.Duration) {
	f.frames++
	f.total += frameTime
	if f.total > time.Second {
		f.rate = f.frames
		f.frames = 0
		f.total = 0
	}
}

// Rate returns the frames counted in the last complete window.
func (f *FrameRate) Rate() int {
	return f.rate
}

// DrawFrameRate writes the counter in the top-right area of the canvas.
func DrawFrameRate(r Renderer, rate int) {
	r.DrawText(fmt.Sprintf("Frame Rate %d", rate), core.Point{X: 400, Y: 100})
}
