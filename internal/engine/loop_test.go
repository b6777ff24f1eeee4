package engine

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

type countingGame struct {
	updates int
	draws   int
}

func (g *countingGame) Initialize(context.Context) (Game, error) { return g, nil }
func (g *countingGame) Update(*core.KeyState) { g.updates++ }
func (g *countingGame) Draw(Renderer) { g.draws++ }

func TestLoopAdvance(t *testing.T) {
	l := NewLoop(10, 5, nil)
	start := time.Unix(0, 0)

	if l.FrameSize() != 100*time.Millisecond {
		t.Fatalf("FrameSize() = %v", l.FrameSize())
	}

	steps := []struct {
		at    time.Duration
		ticks int
	}{
		{0, 0},                       // starts the clock
		{250 * time.Millisecond, 2},  // 250 -> 50 left over
		{300 * time.Millisecond, 0},  // exactly one frame pending, not yet exceeded
		{301 * time.Millisecond, 1},  // now exceeded
		{301 * time.Millisecond, 0},  // no time passed
		{2301 * time.Millisecond, 5}, // backlog capped
		{2350 * time.Millisecond, 0}, // backlog was dropped
	}

	for _, s := range steps {
		if got := l.Advance(start.Add(s.at)); got != s.ticks {
			t.Errorf("Advance(+%v) = %d, expected %d", s.at, got, s.ticks)
		}
	}
}

func TestLoopFrame(t *testing.T) {
	l := NewLoop(10, 5, nil)
	g := &countingGame{}
	r := &recorder{}
	start := time.Unix(0, 0)

	l.Frame(start, g, core.NewKeyState(), r)
	if g.updates != 0 || g.draws != 1 {
		t.Errorf("first frame: updates=%d draws=%d", g.updates, g.draws)
	}

	ticks := l.Frame(start.Add(350*time.Millisecond), g, core.NewKeyState(), r)
	if ticks != 3 || g.updates != 3 || g.draws != 2 {
		t.Errorf("second frame: ticks=%d updates=%d draws=%d", ticks, g.updates, g.draws)
	}
	if len(r.calls) != 0 {
		t.Errorf("frame rate should be hidden by default, got %v", r.calls)
	}

	l.ShowFrameRate = true
	l.Frame(start.Add(400*time.Millisecond), g, core.NewKeyState(), r)
	if len(r.calls) != 1 || r.calls[0] != `text "Frame Rate 0" {400 100}` {
		t.Errorf("calls = %v", r.calls)
	}
}

func TestFrameRate(t *testing.T) {
	var f FrameRate

	for i := 0; i < 59; i++ {
		f.Record(16 * time.Millisecond)
	}
	if f.Rate() != 0 {
		t.Errorf("Rate() before a full second = %d, expected 0", f.Rate())
	}

	for i := 0; i < 4; i++ {
		f.Record(16 * time.Millisecond)
	}
	if f.Rate() != 63 {
		t.Errorf("Rate() = %d, expected 63", f.Rate())
	}
}
