package input

// TwoHandPress edge-detects the "both hold signals pressed at once"
// condition from two boolean streams polled once per frame. Grab fires on
// the rising edge and release on the falling edge, so nothing retriggers
// while both inputs stay down.
type TwoHandPress struct {
	bothDown bool
	pressed  bool
	released bool
}

// Update feeds the instantaneous state of both signals for this frame.
func (t *TwoHandPress) Update(left, right bool) {
	both := left && right
	t.pressed = both && !t.bothDown
	t.released = !both && t.bothDown
	t.bothDown = both
}

// Pressed reports a rising edge this frame.
func (t *TwoHandPress) Pressed() bool { return t.pressed }

// Released reports a falling edge this frame.
func (t *TwoHandPress) Released() bool { return t.released }

// Down reports the instantaneous both-pressed state.
func (t *TwoHandPress) Down() bool { return t.bothDown }
