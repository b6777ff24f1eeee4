package tui

import (
	"context"
	"io"
	"sync"

	"github.com/vovakirdan/walk-the-dog/internal/engine"
)

type bellSound string

func (s bellSound) Name() string { return string(s) }

// Bell is the terminal's only sound: every loaded sound plays as BEL.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

var _ engine.Audio = (*Bell)(nil)

// NewBell rings on out, usually the terminal's stderr.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// LoadSound accepts any data; the terminal cannot decode audio.
func (b *Bell) LoadSound(_ context.Context, name string, _ []byte) (engine.Sound, error) {
	return bellSound(name), nil
}

// PlaySound rings the bell.
func (b *Bell) PlaySound(engine.Sound) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.out, "\a")
	return err
}
