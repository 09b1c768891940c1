package input

// Queries are pure reads. They panic with a *ContractError when called
// before Init or with an id outside its domain.

func (s *State) checkKey(op string, k Key) {
	if !s.initialized {
		panic(&ContractError{Op: op, Err: ErrNotInitialized})
	}
	if !k.Valid() {
		panic(&ContractError{Op: op, Err: invalidKey(k)})
	}
}

func (s *State) checkButton(op string, b MouseButton) {
	if !s.initialized {
		panic(&ContractError{Op: op, Err: ErrNotInitialized})
	}
	if !b.Valid() {
		panic(&ContractError{Op: op, Err: invalidButton(b)})
	}
}

// KeyDown reports whether k was pressed since the last Update.
func (s *State) KeyDown(k Key) bool {
	s.checkKey("KeyDown", k)
	return s.keyDown[k]
}

// KeyHeld reports whether k has been held across at least one Update.
func (s *State) KeyHeld(k Key) bool {
	s.checkKey("KeyHeld", k)
	return s.keyHeld[k]
}

// KeyUp reports whether k was released since the last Update.
func (s *State) KeyUp(k Key) bool {
	s.checkKey("KeyUp", k)
	return s.keyUp[k]
}

// Key reports whether k is just pressed or held.
func (s *State) Key(k Key) bool {
	s.checkKey("Key", k)
	return s.keyDown[k] || s.keyHeld[k]
}

func (s *State) MouseButtonDown(b MouseButton) bool {
	s.checkButton("MouseButtonDown", b)
	return s.buttonDown[b]
}

func (s *State) MouseButtonHeld(b MouseButton) bool {
	s.checkButton("MouseButtonHeld", b)
	return s.buttonHeld[b]
}

func (s *State) MouseButtonUp(b MouseButton) bool {
	s.checkButton("MouseButtonUp", b)
	return s.buttonUp[b]
}

// MouseButton reports whether b is held. Unlike Key it does not include the
// press edge.
func (s *State) MouseButton(b MouseButton) bool {
	s.checkButton("MouseButton", b)
	return s.buttonHeld[b]
}

// MouseDelta returns the cursor motion between the last two samples.
func (s *State) MouseDelta() Point {
	if !s.initialized {
		panic(&ContractError{Op: "MouseDelta", Err: ErrNotInitialized})
	}
	return s.delta
}

// MousePosition returns the last sampled cursor position.
func (s *State) MousePosition() Point {
	if !s.initialized {
		panic(&ContractError{Op: "MousePosition", Err: ErrNotInitialized})
	}
	return s.position
}
