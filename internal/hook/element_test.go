package hook

import "testing"

func TestParseElement(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Element
		ok    bool
	}{
		{"named left button", "mouseleft", MouseElement(1), true},
		{"named right button", "mouseright", MouseElement(2), true},
		{"named middle button", "mousemiddle", MouseElement(3), true},
		{"named back button", "mouseback", MouseElement(4), true},
		{"named forward button", "mouseforward", MouseElement(5), true},
		{"numeric button", "mouse4", MouseElement(4), true},
		{"high numeric button", "mouse9", MouseElement(9), true},
		{"uppercase mouse token", "MOUSE2", MouseElement(2), true},
		{"plain key", "ctrl", KeyElement("ctrl"), true},
		{"key is lowercased", "Shift", KeyElement("shift"), true},
		{"key is trimmed", " a ", KeyElement("a"), true},
		{"arbitrary key accepted", "zzz", KeyElement("zzz"), true},
		{"bad mouse suffix", "mousebogus", Element{}, false},
		{"mouse token with no suffix", "mouse", Element{}, false},
		{"mouse mentioned elsewhere", "bogusmouse", Element{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseElement(tt.token)
			if ok != tt.ok {
				t.Fatalf("ParseElement(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseElement(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestElementString(t *testing.T) {
	if s := MouseElement(4).String(); s != "mouse4" {
		t.Errorf("MouseElement(4).String() = %q, want %q", s, "mouse4")
	}
	if s := KeyElement("ctrl").String(); s != "ctrl" {
		t.Errorf("KeyElement(ctrl).String() = %q, want %q", s, "ctrl")
	}
}

func TestNormalizeKeyName(t *testing.T) {
	tests := []struct {
		raw     string
		rawcode uint16
		want    string
	}{
		{"lctrl", 0, "ctrl"},
		{"rctrl", 0, "ctrl"},
		{"lshift", 0, "shift"},
		{"ralt", 0, "alt"},
		{"return", 0, "enter"},
		{"escape", 0, "esc"},
		{"A", 0, "a"},
		{"", 123, "key123"},
		{"", 0, "unknown"},
	}

	for _, tt := range tests {
		if got := normalizeKeyName(tt.raw, tt.rawcode); got != tt.want {
			t.Errorf("normalizeKeyName(%q, %d) = %q, want %q", tt.raw, tt.rawcode, got, tt.want)
		}
	}

	// Every meta alias collapses to the platform's canonical name.
	meta := metaKeyName()
	for alias := range metaAliases {
		if got := normalizeKeyName(alias, 0); got != meta {
			t.Errorf("normalizeKeyName(%q, 0) = %q, want %q", alias, got, meta)
		}
	}
}

func TestNormalizeButton(t *testing.T) {
	// Left/right/middle pass through everywhere.
	for _, code := range []uint16{1, 2, 3} {
		if got := normalizeButton(code); got != uint8(code) {
			t.Errorf("normalizeButton(%d) = %d, want %d", code, got, code)
		}
	}

	// Unknown high codes pass through as best-effort ordinals.
	if got := normalizeButton(77); got != 77 {
		t.Errorf("normalizeButton(77) = %d, want 77", got)
	}
}
