package event

import "strings"

// Key identifies a keyboard key. Named keys use the constants below;
// character keys hold the character they produce, such as "a".
type Key string

// Named keys.
const (
	KeyEnter     Key = "Enter"
	KeyTab       Key = "Tab"
	KeySpace     Key = "Space"
	KeyBackspace Key = "Backspace"
	KeyDelete    Key = "Delete"
	KeyEscape    Key = "Escape"
	KeyLeft      Key = "ArrowLeft"
	KeyRight     Key = "ArrowRight"
	KeyUp        Key = "ArrowUp"
	KeyDown      Key = "ArrowDown"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
	KeyPageUp    Key = "PageUp"
	KeyPageDown  Key = "PageDown"
)

// Character returns a character key.
func Character(s string) Key {
	return Key(strings.ToLower(s))
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	// Shift is either shift key.
	Shift Modifiers = 1 << iota

	// Control is either control key.
	Control

	// Alt is either alt or option key.
	Alt

	// Logo is the command, windows or super key.
	Logo
)

// Has reports whether all modifiers in m are held.
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// Command reports whether the platform command modifier is held.
// Control and Logo are both accepted.
func (m Modifiers) Command() bool {
	return m&(Control|Logo) != 0
}

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, mod := range []struct {
		flag Modifiers
		name string
	}{{Shift, "shift"}, {Control, "ctrl"}, {Alt, "alt"}, {Logo, "logo"}} {
		if m.Has(mod.flag) {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, "+")
}
