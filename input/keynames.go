package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownKeyName is returned by ParseKey for names outside the key table.
var ErrUnknownKeyName = errors.New("unknown key name")

var keyNames = map[Key]string{
	KeySpace: "Space", KeyApostrophe: "Apostrophe", KeyComma: "Comma", KeyMinus: "Minus",
	KeyPeriod: "Period", KeySlash: "Slash", KeySemicolon: "Semicolon", KeyEqual: "Equal",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",
	KeyLeftBracket: "LeftBracket", KeyBackslash: "Backslash", KeyRightBracket: "RightBracket",
	KeyGraveAccent: "GraveAccent",
	KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab", KeyBackspace: "Backspace",
	KeyInsert: "Insert", KeyDelete: "Delete",
	KeyRight: "Right", KeyLeft: "Left", KeyDown: "Down", KeyUp: "Up",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyHome: "Home", KeyEnd: "End",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyLeftShift: "LeftShift", KeyLeftControl: "LeftControl", KeyLeftAlt: "LeftAlt", KeyLeftSuper: "LeftSuper",
	KeyRightShift: "RightShift", KeyRightControl: "RightControl", KeyRightAlt: "RightAlt", KeyRightSuper: "RightSuper",
	KeyMenu: "Menu",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKey resolves a key name such as "W", "LeftShift" or "f5".
// Matching is case-insensitive.
func ParseKey(name string) (Key, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keysByName[norm]; ok {
		return k, nil
	}
	if s := suggestKey(norm); s != "" {
		return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKeyName, name, s)
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKeyName, name)
}

// suggestKey returns the closest known name within an edit distance of 2.
func suggestKey(norm string) string {
	if norm == "" {
		return ""
	}
	best, bestDist := "", 3
	for k, name := range keyNames {
		d := levenshtein.ComputeDistance(norm, strings.ToLower(name))
		// ties go to the lower key code so suggestions are stable
		if d < bestDist || (d == bestDist && best != "" && k < keysByName[strings.ToLower(best)]) {
			best, bestDist = name, d
		}
	}
	return best
}
