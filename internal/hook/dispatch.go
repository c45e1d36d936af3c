package hook

// SourceMouseShortcut tags dispatched actions with their provenance so
// handlers can distinguish mouse-chord triggers from OS-native shortcuts.
const SourceMouseShortcut = "mouse_shortcut"

// CancelShortcutID is the one-shot shortcut that aborts an in-flight
// recording. It fires on press only, guarded by the recording state.
const CancelShortcutID = "cancel"

// Settings supplies the interaction mode, read fresh on every dispatch.
type Settings interface {
	PushToTalk() bool
}

// ToggleStore keeps the per-shortcut engaged flag for toggle mode. Flip
// inverts the flag for id (absent means disengaged) and returns the new
// value.
type ToggleStore interface {
	Flip(id string) bool
}

// RecordingState reports whether a recording is in flight; the cancel
// shortcut only fires while one is.
type RecordingState interface {
	IsRecording() bool
}

// Action is the start/stop pair bound to a shortcut id.
type Action interface {
	Start(id, source string)
	Stop(id, source string)
}

// ActionResolver looks up the action bound to a shortcut id.
type ActionResolver interface {
	Action(id string) (Action, bool)
}

// AppContext bundles the host-application collaborators the dispatcher
// needs. It is bound once via Init and may be swapped by a later Init call.
type AppContext struct {
	Settings  Settings
	Toggles   ToggleStore
	Recording RecordingState
	Actions   ActionResolver
}

// dispatch resolves and invokes the action bound to id for one press or
// release edge. Called with no state lock held; actions may re-enter the
// registry. A missing app context means "not yet initialized" and is a
// silent no-op; a missing action is logged and swallowed so the listener
// never stops over a bad dispatch.
func (m *Manager) dispatch(id string, isPress bool) {
	app := m.appCtx.Load()
	if app == nil {
		return
	}

	action, ok := app.Actions.Action(id)
	if !ok {
		m.log.Warn().Str("id", id).Msg("no action bound to shortcut")
		return
	}

	switch {
	case id == CancelShortcutID:
		if isPress && app.Recording.IsRecording() {
			action.Start(id, SourceMouseShortcut)
		}
	case app.Settings.PushToTalk():
		if isPress {
			m.log.Debug().Str("id", id).Msg("mouse shortcut press")
			action.Start(id, SourceMouseShortcut)
		} else {
			m.log.Debug().Str("id", id).Msg("mouse shortcut release")
			action.Stop(id, SourceMouseShortcut)
		}
	default:
		// Toggle mode: only press edges matter.
		if isPress {
			if app.Toggles.Flip(id) {
				action.Start(id, SourceMouseShortcut)
			} else {
				action.Stop(id, SourceMouseShortcut)
			}
		}
	}
}
