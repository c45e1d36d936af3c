package hook

import (
	"fmt"
	"strings"
)

// Chord is a set of input elements that must all be held at once to satisfy
// a shortcut. The element set is order-irrelevant and non-empty.
type Chord struct {
	ID            string
	Elements      map[Element]struct{}
	RequiresMouse bool
}

// ParseChord parses a "+"-delimited binding string such as "ctrl+mouse4".
// Every token must parse and the result must be non-empty.
func ParseChord(id, binding string) (*Chord, error) {
	c := &Chord{
		ID:       id,
		Elements: make(map[Element]struct{}),
	}

	for _, part := range splitBinding(binding) {
		el, ok := ParseElement(part)
		if !ok {
			return nil, fmt.Errorf("unrecognized input element %q in binding %q", part, binding)
		}
		if el.IsMouse() {
			c.RequiresMouse = true
		}
		c.Elements[el] = struct{}{}
	}

	if len(c.Elements) == 0 {
		return nil, fmt.Errorf("empty binding %q", binding)
	}
	return c, nil
}

// matchedBy reports whether every element of the chord is in pressed.
func (c *Chord) matchedBy(pressed map[Element]struct{}) bool {
	for el := range c.Elements {
		if _, ok := pressed[el]; !ok {
			return false
		}
	}
	return true
}

func splitBinding(binding string) []string {
	return strings.Split(binding, "+")
}

// ContainsMouseButton reports whether a binding string names at least one
// mouse button. Callers use it to route bindings between this engine and
// the OS-native shortcut path without fully parsing them.
func ContainsMouseButton(binding string) bool {
	for _, part := range splitBinding(binding) {
		if el, ok := ParseElement(part); ok && el.IsMouse() {
			return true
		}
	}
	return false
}
