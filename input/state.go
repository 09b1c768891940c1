// Package input tracks keyboard and mouse state with per-frame edge detection.
//
// Raw press/release notifications from the window are folded into three facts
// per key or button: Down (just pressed), Held (pressed since an earlier tick)
// and Up (just released). Each key moves through
//
//	Idle -> press -> JustDown -> Update -> Held -> release -> JustUp -> Update -> Idle
//
// and Down/Up read true only in JustDown/JustUp.
package input

// State holds edge-triggered key and mouse button state plus cursor motion.
// The zero value is not ready for use; call Init or use New.
type State struct {
	keyDown [NumKeys]bool
	keyHeld [NumKeys]bool
	keyUp   [NumKeys]bool

	buttonDown [NumMouseButtons]bool
	buttonHeld [NumMouseButtons]bool
	buttonUp   [NumMouseButtons]bool

	// ids whose edge flag is cleared at the end of the current Update
	clearKeyDown    []Key
	clearKeyUp      []Key
	clearButtonDown []MouseButton
	clearButtonUp   []MouseButton

	position     Point
	lastPosition Point
	delta        Point
	seeded       bool

	initialized bool
}

// New returns an initialized State.
func New() *State {
	s := &State{}
	s.Init()
	return s
}

// Init clears all state. Calling it again resets the tracker.
func (s *State) Init() {
	*s = State{
		clearKeyDown:    s.clearKeyDown[:0],
		clearKeyUp:      s.clearKeyUp[:0],
		clearButtonDown: s.clearButtonDown[:0],
		clearButtonUp:   s.clearButtonUp[:0],
		initialized:     true,
	}
}

// Initialized reports whether Init has been called.
func (s *State) Initialized() bool { return s.initialized }

// UpdateDown records a key press. Presses of a key that is already held are
// ignored, which swallows OS key-repeat.
func (s *State) UpdateDown(k Key) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !k.Valid() {
		return invalidKey(k)
	}
	if s.keyHeld[k] {
		return nil
	}
	s.keyDown[k] = true
	s.keyUp[k] = false
	return nil
}

// UpdateUp records a key release.
func (s *State) UpdateUp(k Key) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !k.Valid() {
		return invalidKey(k)
	}
	s.keyDown[k] = false
	s.keyUp[k] = true
	return nil
}

// UpdateMouseButtonDown records a mouse button press.
func (s *State) UpdateMouseButtonDown(b MouseButton) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !b.Valid() {
		return invalidButton(b)
	}
	if s.buttonHeld[b] {
		return nil
	}
	s.buttonDown[b] = true
	s.buttonUp[b] = false
	return nil
}

// UpdateMouseButtonUp records a mouse button release.
func (s *State) UpdateMouseButtonUp(b MouseButton) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !b.Valid() {
		return invalidButton(b)
	}
	s.buttonDown[b] = false
	s.buttonUp[b] = true
	return nil
}

// UpdateMouseMove samples the absolute cursor position. The first sample
// seeds the previous position so the initial delta is zero.
func (s *State) UpdateMouseMove(p Point) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !s.seeded {
		s.lastPosition = p
		s.seeded = true
	}
	s.position = p
	s.delta = p.Sub(s.lastPosition)
	s.lastPosition = p
	return nil
}

// Update advances one tick. Every id with Down set becomes Held, every id
// with Up set stops being Held, and both edge flags are then cleared.
func (s *State) Update() error {
	if !s.initialized {
		return ErrNotInitialized
	}

	for i := range s.keyDown {
		k := Key(i)
		if s.keyDown[k] {
			s.clearKeyDown = append(s.clearKeyDown, k)
			s.keyHeld[k] = true
		} else if s.keyUp[k] {
			s.clearKeyUp = append(s.clearKeyUp, k)
			s.keyHeld[k] = false
		}
	}
	for i := range s.buttonDown {
		b := MouseButton(i)
		if s.buttonDown[b] {
			s.clearButtonDown = append(s.clearButtonDown, b)
			s.buttonHeld[b] = true
		} else if s.buttonUp[b] {
			s.clearButtonUp = append(s.clearButtonUp, b)
			s.buttonHeld[b] = false
		}
	}

	for _, k := range s.clearKeyDown {
		s.keyDown[k] = false
	}
	for _, k := range s.clearKeyUp {
		s.keyUp[k] = false
	}
	for _, b := range s.clearButtonDown {
		s.buttonDown[b] = false
	}
	for _, b := range s.clearButtonUp {
		s.buttonUp[b] = false
	}
	s.clearKeyDown = s.clearKeyDown[:0]
	s.clearKeyUp = s.clearKeyUp[:0]
	s.clearButtonDown = s.clearButtonDown[:0]
	s.clearButtonUp = s.clearButtonUp[:0]
	return nil
}
