//go:build darwin

package hook

func metaKeyName() string { return "command" }

// The hook layer shifts the zero-based CGEvent button numbering, so
// back/forward arrive as 4/5.
func resolveExtraButton(code uint16) (uint8, bool) {
	switch code {
	case 4:
		return 4, true
	case 5:
		return 5, true
	}
	return 0, false
}
