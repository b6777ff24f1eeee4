package engine

// RestartUI shows and hides the "new game" button.
type RestartUI interface {
	// ShowRestart displays the button and returns the channel its clicks arrive on.
	ShowRestart() <-chan struct{}
	// HideRestart removes the button.
	HideRestart()
}

// ClickEvents is a one-shot click queue: the frontend's click handler
// sends, the game polls. Clicks beyond the first pending one are dropped,
// since only one restart can be meaningful per game over.
type ClickEvents struct {
	ch chan struct{}
}

// NewClickEvents creates an empty queue.
func NewClickEvents() *ClickEvents {
	return &ClickEvents{ch: make(chan struct{}, 1)}
}

// Click records a click without blocking.
func (c *ClickEvents) Click() {
	select {
	case c.ch <- struct{}{}:
	default:
	}
}

// C returns the receive side of the queue.
func (c *ClickEvents) C() <-chan struct{} {
	return c.ch
}

// Poll reports whether a click is pending, consuming it.
// It never blocks; a nil channel never fires.
func Poll(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// Button is a RestartUI without a widget: it tracks visibility and turns
// Click calls into events while shown. Frontends draw it and call Click
// from their input handlers.
type Button struct {
	visible bool
	events  *ClickEvents
}

// NewButton creates a hidden button.
func NewButton() *Button {
	return &Button{}
}

// ShowRestart makes the button visible with a fresh event queue.
func (b *Button) ShowRestart() <-chan struct{} {
	b.visible = true
	b.events = NewClickEvents()
	return b.events.C()
}

// HideRestart hides the button. Its queue stops receiving clicks.
func (b *Button) HideRestart() {
	b.visible = false
	b.events = nil
}

// Visible reports whether the button is shown.
func (b *Button) Visible() bool {
	return b.visible
}

// Click presses the button. Clicks while hidden are ignored.
func (b *Button) Click() {
	if b.visible && b.events != nil {
		b.events.Click()
	}
}
