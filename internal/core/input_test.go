package core

import "testing"

func TestKeyStatePressRelease(t *testing.T) {
	k := NewKeyState()

	if k.IsPressed(KeySpace) {
		t.Error("new key state should have nothing pressed")
	}

	k.Press(KeySpace)
	k.Press(KeyArrowRight)
	if !k.IsPressed(KeySpace) || !k.IsPressed(KeyArrowRight) {
		t.Error("pressed keys should report as held")
	}
	if k.IsPressed(KeyArrowDown) {
		t.Error("ArrowDown was never pressed")
	}

	k.Release(KeySpace)
	if k.IsPressed(KeySpace) {
		t.Error("released key should not be held")
	}
	if !k.IsPressed(KeyArrowRight) {
		t.Error("releasing one key should not affect another")
	}

	k.ReleaseAll()
	if len(k.Pressed()) != 0 {
		t.Errorf("ReleaseAll left %v held", k.Pressed())
	}
}

func TestKeyStateNilAndZero(t *testing.T) {
	var nilState *KeyState
	if nilState.IsPressed(KeySpace) {
		t.Error("nil key state should have nothing pressed")
	}
	if nilState.Pressed() != nil {
		t.Error("nil key state should list no keys")
	}

	var zero KeyState
	zero.Press(KeyArrowDown)
	if !zero.IsPressed(KeyArrowDown) {
		t.Error("zero value key state should accept presses")
	}
}
