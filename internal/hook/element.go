package hook

import (
	"fmt"
	"strconv"
	"strings"
)

type elementKind uint8

const (
	kindKey elementKind = iota
	kindMouse
)

// Element identifies one physical input: a normalized keyboard key name or a
// mouse button ordinal (1=left, 2=right, 3=middle, 4=back, 5=forward).
// Elements are comparable and usable as map keys.
type Element struct {
	kind   elementKind
	key    string
	button uint8
}

// KeyElement returns the element for a normalized key name.
func KeyElement(name string) Element {
	return Element{kind: kindKey, key: name}
}

// MouseElement returns the element for a mouse button ordinal.
func MouseElement(n uint8) Element {
	return Element{kind: kindMouse, button: n}
}

// IsMouse reports whether the element is a mouse button.
func (e Element) IsMouse() bool {
	return e.kind == kindMouse
}

func (e Element) String() string {
	if e.kind == kindMouse {
		return fmt.Sprintf("mouse%d", e.button)
	}
	return e.key
}

// ParseElement parses one binding token. Tokens are trimmed and lowercased.
// A "mouse" prefix selects a button by alias (left, right, middle, back,
// forward) or decimal ordinal. Any token mentioning "mouse" that is not a
// well-formed mouse token is rejected; every other token is accepted
// verbatim as a key name, with no validation against a known-key list.
func ParseElement(s string) (Element, bool) {
	token := strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(token, "mouse") {
		rest := strings.TrimPrefix(token, "mouse")
		switch rest {
		case "left", "1":
			return MouseElement(1), true
		case "right", "2":
			return MouseElement(2), true
		case "middle", "3":
			return MouseElement(3), true
		case "back", "4":
			return MouseElement(4), true
		case "forward", "5":
			return MouseElement(5), true
		}
		if n, err := strconv.ParseUint(rest, 10, 8); err == nil {
			return MouseElement(uint8(n)), true
		}
		return Element{}, false
	}

	// Malformed mouse tokens ("bogusmouse") must not be silently
	// accepted as key names.
	if strings.Contains(token, "mouse") {
		return Element{}, false
	}

	return KeyElement(token), true
}
