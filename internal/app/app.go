package app

import (
	"context"
	"sync"

	"github.com/avijitbhuin21/Babbl/internal/audio"
	"github.com/avijitbhuin21/Babbl/internal/clip"
	"github.com/avijitbhuin21/Babbl/internal/config"
	"github.com/avijitbhuin21/Babbl/internal/hook"
	"github.com/rs/zerolog"
)

// StatusUpdater is an interface for updating status (e.g., tray icon)
type StatusUpdater interface {
	SetIdle()
	SetRecording()
	SetError()
}

type Config struct {
	Recorder      *audio.Recorder
	Hooks         *hook.Manager
	Config        *config.Config
	Logger        zerolog.Logger
	StatusUpdater StatusUpdater // Optional - can be nil
}

// App is the host application the input-hook engine dispatches into. It
// implements the engine's collaborator interfaces (settings, toggle store,
// recording guard, action table) and the tray-facing operations.
type App struct {
	rec    *audio.Recorder
	hooks  *hook.Manager
	cfg    *config.Config
	log    zerolog.Logger
	status StatusUpdater

	mu            sync.Mutex
	toggles       map[string]bool
	lastRecording string

	actions map[string]hook.Action
}

func New(cfg Config) *App {
	a := &App{
		rec:     cfg.Recorder,
		hooks:   cfg.Hooks,
		cfg:     cfg.Config,
		log:     cfg.Logger,
		status:  cfg.StatusUpdater,
		toggles: make(map[string]bool),
	}
	a.actions = map[string]hook.Action{
		"transcribe":          &action{start: a.startRecording, stop: a.stopRecording},
		hook.CancelShortcutID: &action{start: a.cancelRecording},
	}
	return a
}

// action adapts a start/stop function pair to hook.Action.
type action struct {
	start func(id, source string)
	stop  func(id, source string)
}

func (t *action) Start(id, source string) {
	if t.start != nil {
		t.start(id, source)
	}
}

func (t *action) Stop(id, source string) {
	if t.stop != nil {
		t.stop(id, source)
	}
}

// HookContext bundles the app into the engine's collaborator surface.
func (a *App) HookContext() *hook.AppContext {
	return &hook.AppContext{
		Settings:  a,
		Toggles:   a,
		Recording: a,
		Actions:   a,
	}
}

// PushToTalk implements hook.Settings. The mode is read fresh on every
// dispatch; the tray may flip it at any time.
func (a *App) PushToTalk() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Mode != config.ModeToggle
}

// Flip implements hook.ToggleStore.
func (a *App) Flip(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.toggles[id] = !a.toggles[id]
	return a.toggles[id]
}

// IsRecording implements hook.RecordingState.
func (a *App) IsRecording() bool {
	return a.rec.IsRecording()
}

// Action implements hook.ActionResolver.
func (a *App) Action(id string) (hook.Action, bool) {
	act, ok := a.actions[id]
	return act, ok
}

// RegisterShortcuts submits the configured bindings to the engine. Bindings
// without a mouse button are skipped; those belong to the OS-native
// shortcut path.
func (a *App) RegisterShortcuts() {
	for id, binding := range a.cfg.Shortcuts {
		if !hook.ContainsMouseButton(binding) {
			a.log.Info().Str("id", id).Str("binding", binding).Msg("skipping keyboard-only binding")
			continue
		}
		if err := a.hooks.Register(id, binding); err != nil {
			a.log.Error().Str("id", id).Str("binding", binding).Err(err).Msg("failed to register shortcut")
		}
	}
}

func (a *App) startRecording(id, source string) {
	if err := a.rec.Start(); err != nil {
		a.log.Error().Str("id", id).Err(err).Msg("failed to start recording")
		return
	}
	a.log.Info().Str("id", id).Str("source", source).Msg("recording triggered")
	if a.status != nil {
		a.status.SetRecording()
	}
}

func (a *App) stopRecording(id, source string) {
	path, err := a.rec.Stop()
	if err != nil {
		a.log.Error().Str("id", id).Err(err).Msg("failed to save recording")
		if a.status != nil {
			a.status.SetError()
		}
		return
	}
	if path != "" {
		a.mu.Lock()
		a.lastRecording = path
		a.mu.Unlock()
	}
	if a.status != nil {
		a.status.SetIdle()
	}
}

func (a *App) cancelRecording(id, source string) {
	a.rec.Cancel()

	// A cancelled take leaves the chord disengaged, so toggle mode must
	// start fresh on the next press.
	a.mu.Lock()
	for k := range a.toggles {
		a.toggles[k] = false
	}
	a.mu.Unlock()

	a.log.Info().Str("source", source).Msg("recording cancelled")
	if a.status != nil {
		a.status.SetIdle()
	}
}

// Tray actions

func (a *App) SetMode(mode string) {
	a.mu.Lock()
	a.cfg.Mode = mode
	a.mu.Unlock()
	if err := a.cfg.Save(); err != nil {
		a.log.Error().Err(err).Msg("failed to save config")
	}
}

func (a *App) Mode() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Mode
}

// PauseShortcuts suspends every registered shortcut, e.g. while the user is
// editing bindings. Registrations are kept.
func (a *App) PauseShortcuts() {
	for _, id := range a.hooks.RegisteredIDs() {
		a.hooks.Suspend(id)
	}
}

// ResumeShortcuts re-enables everything PauseShortcuts suspended.
func (a *App) ResumeShortcuts() {
	for _, id := range a.hooks.RegisteredIDs() {
		a.hooks.Resume(id)
	}
}

// ListDevices enumerates the available capture devices for the tray's
// microphone submenu.
func (a *App) ListDevices() ([]audio.AudioDevice, error) {
	return a.rec.Devices()
}

// SetDevice switches the capture device and persists the choice. Fails
// while a take is in flight.
func (a *App) SetDevice(id string) error {
	if err := a.rec.SetDevice(id); err != nil {
		return err
	}
	a.mu.Lock()
	a.cfg.Audio.DeviceID = id
	a.mu.Unlock()
	return a.cfg.Save()
}

// CopyLastRecording puts the path of the most recent take on the clipboard.
func (a *App) CopyLastRecording() error {
	a.mu.Lock()
	path := a.lastRecording
	a.mu.Unlock()
	return clip.Copy(path)
}

func (a *App) LastRecording() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastRecording
}

func (a *App) Shutdown(ctx context.Context) error {
	if a.rec.IsRecording() {
		a.stopRecording("shutdown", "shutdown")
	}
	return nil
}
