package core

import "sort"

// Logical key names understood by the game. They follow the browser
// KeyboardEvent.code vocabulary so every frontend maps onto the same set.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowDown  = "ArrowDown"
	KeySpace      = "Space"
)

// KeyState is the snapshot of held keys that the game reads at the start of
// each simulation tick. Frontends write to it between ticks; it is not safe
// for concurrent use.
type KeyState struct {
	pressed map[string]bool
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{pressed: make(map[string]bool)}
}

// Press marks a key as held.
func (k *KeyState) Press(code string) {
	if k.pressed == nil {
		k.pressed = make(map[string]bool)
	}
	k.pressed[code] = true
}

// Release marks a key as no longer held.
func (k *KeyState) Release(code string) {
	delete(k.pressed, code)
}

// ReleaseAll clears every held key. Terminals report presses only, so the
// TUI frontend calls this once the pressed keys have been seen by a tick.
func (k *KeyState) ReleaseAll() {
	for code := range k.pressed {
		delete(k.pressed, code)
	}
}

// IsPressed reports whether the key is currently held.
// A nil KeyState has nothing pressed.
func (k *KeyState) IsPressed(code string) bool {
	if k == nil {
		return false
	}
	return k.pressed[code]
}

// Pressed returns the held keys in sorted order.
func (k *KeyState) Pressed() []string {
	if k == nil {
		return nil
	}
	keys := make([]string, 0, len(k.pressed))
	for code := range k.pressed {
		keys = append(keys, code)
	}
	sort.Strings(keys)
	return keys
}
