package engine

import "context"

// Sound is a decoded sound effect owned by an Audio implementation.
type Sound interface {
	Name() string
}

// Audio decodes and plays sound effects. PlaySound is fire-and-forget;
// callers log its error and carry on.
type Audio interface {
	LoadSound(ctx context.Context, name string, data []byte) (Sound, error)
	PlaySound(sound Sound) error
}

// NopAudio is an Audio that decodes nothing and plays nothing.
type NopAudio struct{}

type nopSound string

func (s nopSound) Name() string { return string(s) }

// LoadSound returns a silent sound.
func (NopAudio) LoadSound(_ context.Context, name string, _ []byte) (Sound, error) {
	return nopSound(name), nil
}

// PlaySound does nothing.
func (NopAudio) PlaySound(Sound) error { return nil }
