package tray

import (
	"testing"

	"github.com/avijitbhuin21/Babbl/internal/config"
)

func TestModeTitle(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want string
	}{
		{"push-to-talk", config.ModePushToTalk, "Mode: Push-to-Talk"},
		{"toggle", config.ModeToggle, "Mode: Toggle"},
		{"unknown falls back to push-to-talk", "whatever", "Mode: Push-to-Talk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modeTitle(tt.mode); got != tt.want {
				t.Errorf("modeTitle(%q) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestEmojiForStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"recording", "🔴"},
		{"idle", "🟢"},
		{"error", "⚪️"},
		{"unknown", "🟢"},
	}

	for _, tt := range tests {
		if got := emojiForStatus(tt.status); got != tt.want {
			t.Errorf("emojiForStatus(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
