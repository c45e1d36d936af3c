//go:build linux

package hook

func metaKeyName() string { return "super" }

// X11 reports back/forward as buttons 8/9; some hook builds pre-map them
// to 4/5 already.
func resolveExtraButton(code uint16) (uint8, bool) {
	switch code {
	case 8, 4:
		return 4, true
	case 9, 5:
		return 5, true
	}
	return 0, false
}
