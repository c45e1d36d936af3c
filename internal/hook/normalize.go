package hook

import (
	"fmt"
	"strings"
)

// keyAliases folds the platform key names reported by the hook library into
// canonical lowercase names. Left/right variants of the modifier keys
// collapse into one name; the meta key is resolved per platform.
var keyAliases = map[string]string{
	"ctrl":        "ctrl",
	"lctrl":       "ctrl",
	"rctrl":       "ctrl",
	"control":     "ctrl",
	"shift":       "shift",
	"lshift":      "shift",
	"rshift":      "shift",
	"alt":         "alt",
	"lalt":        "alt",
	"ralt":        "alt",
	"altgr":       "alt",
	"option":      "alt",
	"enter":       "enter",
	"return":      "enter",
	"escape":      "esc",
	"esc":         "esc",
	"space":       "space",
	"spacebar":    "space",
	"delete":      "delete",
	"del":         "delete",
	"backspace":   "backspace",
	"tab":         "tab",
	"capslock":    "capslock",
	"up":          "up",
	"down":        "down",
	"left":        "left",
	"right":       "right",
	"home":        "home",
	"end":         "end",
	"pageup":      "pageup",
	"pagedown":    "pagedown",
	"insert":      "insert",
	"printscreen": "printscreen",
	"scrolllock":  "scrolllock",
	"numlock":     "numlock",
	"pause":       "pause",
}

// metaAliases are the names the meta/super/command key arrives under; all of
// them normalize to the platform's canonical name.
var metaAliases = map[string]struct{}{
	"meta":    {},
	"lmeta":   {},
	"rmeta":   {},
	"cmd":     {},
	"lcmd":    {},
	"rcmd":    {},
	"command": {},
	"win":     {},
	"lwin":    {},
	"rwin":    {},
	"super":   {},
}

// normalizeKeyName maps a raw platform key name and keycode to one canonical
// lowercase name. Unrecognized names pass through lowercased; a missing name
// falls back to a synthetic "key<code>" placeholder, or "unknown" when not
// even a keycode is available.
func normalizeKeyName(raw string, rawcode uint16) string {
	name := strings.ToLower(strings.TrimSpace(raw))

	if canonical, ok := keyAliases[name]; ok {
		return canonical
	}
	if _, ok := metaAliases[name]; ok {
		return metaKeyName()
	}
	if name != "" {
		return name
	}
	if rawcode != 0 {
		return fmt.Sprintf("key%d", rawcode)
	}
	return "unknown"
}

// normalizeButton maps a raw platform button code to a canonical ordinal.
// Left/right/middle are 1/2/3 everywhere; back/forward go through the
// per-platform lookup; anything else passes through as a best-effort
// ordinal. Never fails, so callers must tolerate meaningless high numbers.
func normalizeButton(code uint16) uint8 {
	switch code {
	case 1, 2, 3:
		return uint8(code)
	}
	if n, ok := resolveExtraButton(code); ok {
		return n
	}
	return uint8(code)
}
