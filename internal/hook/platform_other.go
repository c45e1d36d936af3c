//go:build !linux && !windows && !darwin

package hook

func metaKeyName() string { return "meta" }

func resolveExtraButton(code uint16) (uint8, bool) {
	return 0, false
}
