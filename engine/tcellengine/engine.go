// Package tcellengine provides a shortcut-detection engine backed by
// tcell. It implements keybind.Binder and keybind.Unbinder: callers
// register key-sequence specs (keyseq syntax) with callbacks, and the
// engine fires the callback when the user types a matching sequence.
//
// Callbacks run on the engine's event goroutine, one at a time.
package tcellengine

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/keyseq"
)

// binding is one registered sequence with its callback.
type binding struct {
	raw string
	seq *keyseq.Sequence
	fn  func()
}

// Engine detects key sequences on a tcell screen.
type Engine struct {
	mu       sync.Mutex
	screen   tcell.Screen
	bindings []binding
	pending  *keyseq.Sequence

	// ownScreen is true when the engine created the screen and is
	// responsible for Init/Fini.
	ownScreen bool
	closed    bool
}

// New creates an engine with its own terminal screen. Run initializes
// and finalizes the screen.
func New() (*Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	e := NewWithScreen(screen)
	e.ownScreen = true
	return e, nil
}

// NewWithScreen creates an engine on a caller-owned screen. The caller
// must Init the screen before Run and Fini it afterwards. Tests use
// this with tcell.NewSimulationScreen.
func NewWithScreen(screen tcell.Screen) *Engine {
	return &Engine{
		screen:  screen,
		pending: keyseq.NewSequence(),
	}
}

// Screen returns the underlying screen, for callers that draw on it.
// Drawing from shortcut callbacks is safe: they run on the event
// goroutine.
func (e *Engine) Screen() tcell.Screen {
	return e.screen
}

// Bind registers fn for every given sequence spec. Registering a
// sequence that is already bound replaces the previous callback (last
// registration wins).
func (e *Engine) Bind(sequences []string, fn func()) error {
	if fn == nil {
		return fmt.Errorf("nil callback")
	}

	parsed := make([]*keyseq.Sequence, 0, len(sequences))
	for _, raw := range sequences {
		seq, err := keyseq.ParseSequence(raw)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", raw, err)
		}
		if seq.IsEmpty() {
			return fmt.Errorf("empty sequence %q", raw)
		}
		parsed = append(parsed, seq)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, seq := range parsed {
		e.removeLocked(seq)
		e.bindings = append(e.bindings, binding{raw: sequences[i], seq: seq, fn: fn})
	}
	return nil
}

// Unbind removes the registrations for the given sequence specs.
// Unknown sequences are silent no-ops.
func (e *Engine) Unbind(sequences []string) error {
	for _, raw := range sequences {
		seq, err := keyseq.ParseSequence(raw)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", raw, err)
		}

		e.mu.Lock()
		e.removeLocked(seq)
		e.mu.Unlock()
	}
	return nil
}

// removeLocked removes the binding whose sequence equals seq.
// Caller must hold the lock.
func (e *Engine) removeLocked(seq *keyseq.Sequence) {
	for i, b := range e.bindings {
		if b.seq.Equals(seq) {
			e.bindings = append(e.bindings[:i], e.bindings[i+1:]...)
			return
		}
	}
}

// Run polls screen events and fires callbacks for matched sequences.
// It returns when Close is called or the screen's event stream ends.
func (e *Engine) Run() error {
	if e.ownScreen {
		if err := e.screen.Init(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		defer e.screen.Fini()
	}

	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if fn := e.feed(ev); fn != nil {
				fn()
			}
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			e.screen.Sync()
		}
	}
}

// Close stops Run. Safe to call from any goroutine, including shortcut
// callbacks.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	// Wakes up PollEvent; the error only means the queue was full,
	// in which case Run is about to process events anyway.
	_ = e.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// feed advances sequence matching with one key event and returns the
// callback to fire, if any.
func (e *Engine) feed(ev *tcell.EventKey) func() {
	chord, ok := chordFromEvent(ev)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending.Add(chord)

	if fn := e.exactLocked(e.pending); fn != nil {
		e.pending = keyseq.NewSequence()
		return fn
	}
	if e.prefixLocked(e.pending) {
		// Wait for more keys
		return nil
	}

	// Dead end: retry the newest chord as the start of a sequence
	e.pending = keyseq.NewSequenceFrom(chord)
	if fn := e.exactLocked(e.pending); fn != nil {
		e.pending = keyseq.NewSequence()
		return fn
	}
	if !e.prefixLocked(e.pending) {
		e.pending = keyseq.NewSequence()
	}
	return nil
}

// exactLocked returns the callback of the newest binding whose sequence
// equals seq. Caller must hold the lock.
func (e *Engine) exactLocked(seq *keyseq.Sequence) func() {
	for i := len(e.bindings) - 1; i >= 0; i-- {
		if e.bindings[i].seq.Equals(seq) {
			return e.bindings[i].fn
		}
	}
	return nil
}

// prefixLocked returns true if seq is a strict prefix of any binding.
// Caller must hold the lock.
func (e *Engine) prefixLocked(seq *keyseq.Sequence) bool {
	for _, b := range e.bindings {
		if b.seq.Len() > seq.Len() && b.seq.HasPrefix(seq) {
			return true
		}
	}
	return false
}
