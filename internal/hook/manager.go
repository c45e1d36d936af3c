// Package hook is a global input-hook engine: it listens system-wide for
// keyboard and mouse events and matches them against registered chords that
// may mix keys and mouse buttons, a combination the OS-native shortcut APIs
// do not expose for mouse buttons.
package hook

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	gohook "github.com/robotn/gohook"
	"github.com/rs/zerolog"
)

// ErrNotMouseChord is returned by Register for bindings with no mouse
// button; those belong to the OS-native shortcut path, not this engine.
var ErrNotMouseChord = errors.New("binding contains no mouse button; use the OS shortcut path")

// Manager owns the engine state and the background listener. Construct one
// with NewManager and share it; all methods are safe to call concurrently
// with the listener, including re-entrantly from a dispatched action.
type Manager struct {
	log    zerolog.Logger
	appCtx atomic.Pointer[AppContext]

	// mu guards the four sets below. The listener never holds it while
	// dispatching: transitions are computed under the lock, side effects
	// run after release, so a dispatched action may safely re-enter the
	// registry.
	mu         sync.RWMutex
	pressed    map[Element]struct{}
	registered map[string]*Chord
	suspended  map[string]struct{}
	active     map[string]struct{}

	runMu   sync.Mutex
	running bool
}

// NewManager creates an engine with no registrations and no listener
// running. The listener starts on the first Init call.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		log:        log,
		pressed:    make(map[Element]struct{}),
		registered: make(map[string]*Chord),
		suspended:  make(map[string]struct{}),
		active:     make(map[string]struct{}),
	}
}

// Init binds (or replaces) the application context and starts the global
// listener if it is not already running. Calling Init again while the
// listener runs only swaps the context.
func (m *Manager) Init(app *AppContext) {
	m.appCtx.Store(app)
	m.startListener()
}

func (m *Manager) startListener() {
	m.runMu.Lock()
	if m.running {
		m.runMu.Unlock()
		m.log.Debug().Msg("input listener already running")
		return
	}
	m.running = true
	m.runMu.Unlock()

	go m.runLoop()
}

// runLoop consumes the raw OS event stream for the life of the hook. The
// stream closing is the single fatal path: the listener is flagged stopped
// so a later Init can restart it.
func (m *Manager) runLoop() {
	m.log.Info().Msg("starting global input listener")

	events := gohook.Start()
	for ev := range events {
		m.handleEvent(ev)
	}

	m.log.Error().Msg("global input listener terminated")
	m.runMu.Lock()
	m.running = false
	m.runMu.Unlock()
}

// handleEvent normalizes one raw event to an element and a press/release
// edge. Key repeats arrive as additional press edges; the matcher is
// edge-triggered so an already-active chord never re-fires on them.
func (m *Manager) handleEvent(ev gohook.Event) {
	switch ev.Kind {
	case gohook.KeyDown, gohook.KeyHold:
		m.handleInput(KeyElement(normalizeKeyName(gohook.RawcodetoKeychar(ev.Rawcode), ev.Rawcode)), true)
	case gohook.KeyUp:
		m.handleInput(KeyElement(normalizeKeyName(gohook.RawcodetoKeychar(ev.Rawcode), ev.Rawcode)), false)
	case gohook.MouseDown:
		m.handleInput(MouseElement(normalizeButton(ev.Button)), true)
	case gohook.MouseUp:
		m.handleInput(MouseElement(normalizeButton(ev.Button)), false)
	}
}

// handleInput applies one normalized edge to the pressed set, computes the
// chords that just became satisfied or just stopped being satisfied, and
// dispatches them after dropping the lock. Matching is strictly
// edge-triggered on both sides: a chord fires only on its unmatched-to-
// matched transition, so an autorepeat press of a held element, an
// unrelated press while the chord stays satisfied, or a resume while the
// chord is still physically held never produce a fresh start.
func (m *Manager) handleInput(el Element, isPress bool) {
	var press []string
	var release []string

	m.mu.Lock()
	before := make(map[Element]struct{}, len(m.pressed))
	for p := range m.pressed {
		before[p] = struct{}{}
	}

	if isPress {
		m.pressed[el] = struct{}{}
		for id, c := range m.registered {
			if !c.RequiresMouse {
				continue
			}
			if _, ok := m.suspended[id]; ok {
				continue
			}
			if _, ok := m.active[id]; ok {
				continue
			}
			if c.matchedBy(m.pressed) && !c.matchedBy(before) {
				m.active[id] = struct{}{}
				press = append(press, id)
			}
		}
	} else {
		delete(m.pressed, el)

		for id := range m.active {
			c := m.registered[id]
			if c.matchedBy(before) && !c.matchedBy(m.pressed) {
				delete(m.active, id)
				release = append(release, id)
			}
		}
	}
	m.mu.Unlock()

	for _, id := range press {
		m.log.Info().Str("id", id).Msg("shortcut matched")
		m.dispatch(id, true)
	}
	for _, id := range release {
		m.log.Debug().Str("id", id).Msg("shortcut released")
		m.dispatch(id, false)
	}
}

// Register parses binding and adds it to the registry, overwriting any
// existing chord with the same id. Bindings without a mouse button are
// rejected with ErrNotMouseChord.
func (m *Manager) Register(id, binding string) error {
	chord, err := ParseChord(id, binding)
	if err != nil {
		m.log.Warn().Str("id", id).Str("binding", binding).Err(err).Msg("failed to parse shortcut")
		return fmt.Errorf("parse shortcut %q: %w", binding, err)
	}
	if !chord.RequiresMouse {
		return ErrNotMouseChord
	}

	m.mu.Lock()
	m.registered[id] = chord
	m.mu.Unlock()

	m.log.Info().Str("id", id).Str("binding", binding).Msg("registered mouse shortcut")
	return nil
}

// Unregister removes id from the registry. Removing an unknown id is not
// an error.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	delete(m.registered, id)
	delete(m.suspended, id)
	delete(m.active, id)
	m.mu.Unlock()

	m.log.Debug().Str("id", id).Msg("unregistered mouse shortcut")
}

// Suspend disables id without losing its registration. If the chord is
// currently active its release edge is dispatched, so a push-to-talk action
// never stays engaged past suspension. Resuming never retroactively
// triggers; a fresh satisfying press transition is required to re-arm.
func (m *Manager) Suspend(id string) {
	m.mu.Lock()
	m.suspended[id] = struct{}{}
	_, wasActive := m.active[id]
	delete(m.active, id)
	m.mu.Unlock()

	m.log.Debug().Str("id", id).Msg("suspended mouse shortcut")
	if wasActive {
		m.dispatch(id, false)
	}
}

// Resume re-enables a suspended id. Idempotent.
func (m *Manager) Resume(id string) {
	m.mu.Lock()
	delete(m.suspended, id)
	m.mu.Unlock()

	m.log.Debug().Str("id", id).Msg("resumed mouse shortcut")
}

// IsRegistered reports whether id is in the registry.
func (m *Manager) IsRegistered(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.registered[id]
	return ok
}

// RegisteredIDs returns the ids currently in the registry.
func (m *Manager) RegisteredIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.registered))
	for id := range m.registered {
		ids = append(ids, id)
	}
	return ids
}
