package desktop

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/walk-the-dog/internal/engine"
)

// sampleRate is the audio context rate every sound is resampled to.
const sampleRate = 44100

// sound is decoded PCM. An empty sound plays nothing.
type sound struct {
	name string
	pcm  []byte
}

func (s *sound) Name() string { return s.name }

// Audio decodes and plays sounds through one ebiten audio context.
type Audio struct {
	context *audio.Context
}

var _ engine.Audio = (*Audio)(nil)

// NewAudio creates the process-wide audio context.
func NewAudio() *Audio {
	return &Audio{context: audio.NewContext(sampleRate)}
}

// LoadSound decodes data by its file extension. A pack without the sound
// file passes no data and gets a silent sound.
func (a *Audio) LoadSound(_ context.Context, name string, data []byte) (engine.Sound, error) {
	if len(data) == 0 {
		return &sound{name: name}, nil
	}

	var (
		stream io.Reader
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("desktop: unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("desktop: decode %s: %w", name, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("desktop: read decoded audio %s: %w", name, err)
	}
	return &sound{name: name, pcm: pcm}, nil
}

// PlaySound starts a new player for the sound.
func (a *Audio) PlaySound(s engine.Sound) error {
	snd, ok := s.(*sound)
	if !ok {
		return fmt.Errorf("desktop: sound %s was not loaded by this audio", s.Name())
	}
	if len(snd.pcm) == 0 {
		return nil
	}
	a.context.NewPlayerFromBytes(snd.pcm).Play()
	return nil
}
