package app

import (
	"context"
	"testing"
	"time"

	"github.com/avijitbhuin21/Babbl/internal/audio"
	"github.com/avijitbhuin21/Babbl/internal/config"
	"github.com/avijitbhuin21/Babbl/internal/hook"
	"github.com/rs/zerolog"
)

// Mock implementations for testing
type mockCapture struct{}

func (m *mockCapture) Start(ctx context.Context, deviceID string, sampleRate int, out chan<- []float32) error {
	return nil
}

func (m *mockCapture) Stop() error {
	return nil
}

func (m *mockCapture) ListDevices() ([]audio.AudioDevice, error) {
	return []audio.AudioDevice{{ID: "default", Name: "Default", Default: true}}, nil
}

func (m *mockCapture) Close() error {
	return nil
}

type mockStatus struct {
	idle, recording, errored int
}

func (m *mockStatus) SetIdle()      { m.idle++ }
func (m *mockStatus) SetRecording() { m.recording++ }
func (m *mockStatus) SetError()     { m.errored++ }

func newTestApp(t *testing.T, mode string) (*App, *mockStatus) {
	t.Helper()

	// Keep config saves inside the test sandbox on every platform.
	confDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confDir)
	t.Setenv("HOME", confDir)
	t.Setenv("APPDATA", confDir)

	cfg := config.Default()
	cfg.Mode = mode
	cfg.RecordingsDir = t.TempDir()

	status := &mockStatus{}
	rec := audio.NewRecorder(&mockCapture{}, "", 16000, cfg.RecordingsDir, zerolog.Nop())
	application := New(Config{
		Recorder:      rec,
		Hooks:         hook.NewManager(zerolog.Nop()),
		Config:        cfg,
		Logger:        zerolog.Nop(),
		StatusUpdater: status,
	})
	return application, status
}

func TestPushToTalkFollowsMode(t *testing.T) {
	a, _ := newTestApp(t, config.ModePushToTalk)
	if !a.PushToTalk() {
		t.Error("PushToTalk mode should report push-to-talk")
	}

	a.SetMode(config.ModeToggle)
	if a.PushToTalk() {
		t.Error("Toggle mode should not report push-to-talk")
	}
}

func TestFlipAlternates(t *testing.T) {
	a, _ := newTestApp(t, config.ModeToggle)

	if !a.Flip("transcribe") {
		t.Error("first flip should engage")
	}
	if a.Flip("transcribe") {
		t.Error("second flip should disengage")
	}
	if !a.Flip("transcribe") {
		t.Error("third flip should engage again")
	}
}

func TestTranscribeActionRecords(t *testing.T) {
	a, status := newTestApp(t, config.ModePushToTalk)

	act, ok := a.Action("transcribe")
	if !ok {
		t.Fatal("transcribe action not bound")
	}

	if a.IsRecording() {
		t.Fatal("app should not be recording initially")
	}

	act.Start("transcribe", hook.SourceMouseShortcut)
	if !a.IsRecording() {
		t.Fatal("app should be recording after action start")
	}
	if status.recording != 1 {
		t.Errorf("status.SetRecording called %d times, want 1", status.recording)
	}

	act.Stop("transcribe", hook.SourceMouseShortcut)

	var stopped bool
	for i := 0; i < 100; i++ {
		if !a.IsRecording() {
			stopped = true
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !stopped {
		t.Fatal("app should have stopped recording after action stop")
	}

	if a.LastRecording() == "" {
		t.Error("last recording path should be recorded after stop")
	}
	if status.idle != 1 {
		t.Errorf("status.SetIdle called %d times, want 1", status.idle)
	}
}

func TestCancelActionDiscardsAndResetsToggles(t *testing.T) {
	a, _ := newTestApp(t, config.ModeToggle)

	startAct, _ := a.Action("transcribe")
	cancelAct, ok := a.Action(hook.CancelShortcutID)
	if !ok {
		t.Fatal("cancel action not bound")
	}

	a.Flip("transcribe") // toggle mode engaged the chord
	startAct.Start("transcribe", hook.SourceMouseShortcut)
	if !a.IsRecording() {
		t.Fatal("should be recording")
	}

	cancelAct.Start(hook.CancelShortcutID, hook.SourceMouseShortcut)
	if a.IsRecording() {
		t.Error("cancel should stop the recording")
	}
	if a.LastRecording() != "" {
		t.Error("cancel should not save a recording")
	}

	// Toggle flag was reset: next flip engages again.
	if !a.Flip("transcribe") {
		t.Error("toggle flag should have been reset by cancel")
	}
}

func TestRegisterShortcutsSkipsKeyboardOnly(t *testing.T) {
	a, _ := newTestApp(t, config.ModePushToTalk)
	a.cfg.Shortcuts = map[string]string{
		"transcribe": "ctrl+mouse4",
		"copy":       "ctrl+shift+c",
	}

	a.RegisterShortcuts()

	if !a.hooks.IsRegistered("transcribe") {
		t.Error("mouse binding should be registered")
	}
	if a.hooks.IsRegistered("copy") {
		t.Error("keyboard-only binding should be skipped")
	}
}

func TestPauseAndResumeShortcuts(t *testing.T) {
	a, _ := newTestApp(t, config.ModePushToTalk)
	a.RegisterShortcuts()

	a.PauseShortcuts()
	for _, id := range a.hooks.RegisteredIDs() {
		if !a.hooks.IsRegistered(id) {
			t.Errorf("pause must keep %q registered", id)
		}
	}

	a.ResumeShortcuts()
	a.PauseShortcuts() // idempotent round trips
	a.ResumeShortcuts()
}

func TestListDevices(t *testing.T) {
	a, _ := newTestApp(t, config.ModePushToTalk)

	devices, err := a.ListDevices()
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 1 || devices[0].ID != "default" {
		t.Errorf("devices = %v, want the mock default device", devices)
	}
}

func TestSetDevice(t *testing.T) {
	a, _ := newTestApp(t, config.ModePushToTalk)

	if err := a.SetDevice("usb-mic"); err != nil {
		t.Fatalf("SetDevice failed: %v", err)
	}
	if a.cfg.Audio.DeviceID != "usb-mic" {
		t.Errorf("config device = %q, want %q", a.cfg.Audio.DeviceID, "usb-mic")
	}
}

func TestSetDeviceWhileRecording(t *testing.T) {
	a, _ := newTestApp(t, config.ModePushToTalk)

	act, _ := a.Action("transcribe")
	act.Start("transcribe", hook.SourceMouseShortcut)

	if err := a.SetDevice("usb-mic"); err == nil {
		t.Error("SetDevice should fail while recording")
	}

	act.Stop("transcribe", hook.SourceMouseShortcut)
	if err := a.SetDevice("usb-mic"); err != nil {
		t.Errorf("SetDevice after stop failed: %v", err)
	}
}

func TestCopyLastRecordingEmpty(t *testing.T) {
	a, _ := newTestApp(t, config.ModePushToTalk)
	if err := a.CopyLastRecording(); err == nil {
		t.Error("expected error with no recording to copy")
	}
}
