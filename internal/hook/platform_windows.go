//go:build windows

package hook

func metaKeyName() string { return "win" }

// XBUTTON1 (back) and XBUTTON2 (forward) arrive as 4 and 5.
func resolveExtraButton(code uint16) (uint8, bool) {
	switch code {
	case 4:
		return 4, true
	case 5:
		return 5, true
	}
	return 0, false
}
