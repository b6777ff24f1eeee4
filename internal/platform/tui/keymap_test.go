package tui

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapCode(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		code string
		ok   bool
	}{
		{"right arrow runs", tea.KeyMsg{Type: tea.KeyRight}, core.KeyArrowRight, true},
		{"d runs", runeKey("d"), core.KeyArrowRight, true},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace, true},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.KeySpace, true},
		{"down slides", tea.KeyMsg{Type: tea.KeyDown}, core.KeyArrowDown, true},
		{"s slides", runeKey("s"), core.KeyArrowDown, true},
		{"quit is not a game key", runeKey("q"), "", false},
		{"enter is not a game key", tea.KeyMsg{Type: tea.KeyEnter}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, ok := km.Code(tc.msg)
			if code != tc.code || ok != tc.ok {
				t.Errorf("Code(%q) = (%q, %v), expected (%q, %v)", tc.msg.String(), code, ok, tc.code, tc.ok)
			}
		})
	}
}

func TestKeyMapControls(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"q quits", runeKey("q"), km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
		{"enter restarts", tea.KeyMsg{Type: tea.KeyEnter}, km.Restart},
		{"r restarts", runeKey("r"), km.Restart},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, km.Screenshot},
		{"f toggles the frame rate", runeKey("f"), km.FrameRate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !key.Matches(tc.msg, tc.binding) {
				t.Errorf("%q should match %v", tc.msg.String(), tc.binding.Keys())
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp lists %d bindings, expected 8", total)
	}
}

func TestBell(t *testing.T) {
	var out bytes.Buffer
	b := NewBell(&out)

	sound, err := b.LoadSound(context.Background(), "SFX_Jump_23.mp3", nil)
	if err != nil {
		t.Fatalf("LoadSound() error = %v", err)
	}
	if sound.Name() != "SFX_Jump_23.mp3" {
		t.Errorf("Name() = %q", sound.Name())
	}
	if err := b.PlaySound(sound); err != nil {
		t.Fatalf("PlaySound() error = %v", err)
	}
	if out.String() != "\a" {
		t.Errorf("bell wrote %q, expected BEL", out.String())
	}
}
