package keybind

import (
	"fmt"
	"reflect"
	"runtime/debug"
	"sync"

	"github.com/dshills/keybind/multimap"
)

// Handler is a function subscribed to an action. It is invoked with the
// action name when any of the action's key sequences is detected.
type Handler func(action string)

// Binder is the capability required of a shortcut-detection engine.
// Implementations must invoke fn once per detected match of any of the
// given sequences, on the goroutine the engine delivers events from.
// Sequence syntax is defined entirely by the engine.
type Binder interface {
	Bind(sequences []string, fn func()) error
}

// Unbinder is implemented by engines that can release registrations.
// Registry.Close uses it when available.
type Unbinder interface {
	Unbind(sequences []string) error
}

// PanicHandler receives panics recovered from dispatched handlers.
type PanicHandler func(action string, recovered any, stack []byte)

// handlerEntry stores a handler together with its identity, since func
// values are not comparable. Identity is the function's code pointer.
type handlerEntry struct {
	fn Handler
	id uintptr
}

// Registry maps named actions to handler functions and bridges a
// detection engine to them. All methods are safe for concurrent use,
// though typical use is single-threaded event delivery.
type Registry struct {
	mu           sync.RWMutex
	binder       Binder
	bindings     []Binding
	handlers     *multimap.MultiMap[string, handlerEntry]
	panicHandler PanicHandler
	closed       bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithPanicHandler sets the hook that receives panics recovered from
// handlers during dispatch. Without it, handler panics are swallowed.
func WithPanicHandler(h PanicHandler) Option {
	return func(r *Registry) {
		r.panicHandler = h
	}
}

// New creates a registry and registers every binding's sequences with the
// engine, in input order. Each registration's callback dispatches to the
// handlers registered for that binding's action at fire time.
//
// Duplicate raw sequences across bindings are passed through untouched;
// the engine's own conflict policy applies (typically last registration
// wins). A failed registration aborts construction.
func New(binder Binder, bindings []Binding, opts ...Option) (*Registry, error) {
	if binder == nil {
		return nil, ErrNilBinder
	}

	r := &Registry{
		binder:   binder,
		bindings: make([]Binding, len(bindings)),
		handlers: multimap.New[string, handlerEntry](),
	}
	copy(r.bindings, bindings)

	for _, opt := range opts {
		opt(r)
	}

	for _, b := range r.bindings {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("invalid binding: %w", err)
		}

		action := b.Action
		err := binder.Bind(b.Keys, func() {
			r.Dispatch(action)
		})
		if err != nil {
			return nil, &BindError{Action: b.Action, Keys: b.Keys, Err: err}
		}
	}

	return r, nil
}

// AddHandler registers fn as a subscriber to action. Multiple handlers
// per action are permitted and all run on dispatch. Registering the same
// handler twice makes it run twice per dispatch.
func (r *Registry) AddHandler(action string, fn Handler) error {
	if fn == nil {
		return ErrInvalidHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRegistryClosed
	}

	r.handlers.Put(action, handlerEntry{fn: fn, id: handlerID(fn)})
	return nil
}

// RemoveHandler unregisters the first registration of fn for action,
// matched by function identity. Unknown actions and handlers that were
// never registered are silent no-ops.
func (r *Registry) RemoveHandler(action string, fn Handler) {
	if fn == nil {
		return
	}
	id := handlerID(fn)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers.Remove(action, func(e handlerEntry) bool {
		return e.id == id
	})
}

// HandlersFor returns the handlers currently registered for action in
// registration order. found is false if the action never had a handler.
// The slice is a snapshot; mutating it does not affect the registry.
func (r *Registry) HandlersFor(action string) (handlers []Handler, found bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.handlers.Get(action)
	if !ok {
		return nil, false
	}
	out := make([]Handler, len(entries))
	for i, e := range entries {
		out[i] = e.fn
	}
	return out, true
}

// Bindings returns a copy of the configuration supplied at construction.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// Dispatch invokes every handler registered for action exactly once, in
// registration order, passing the action name. No handlers is a no-op,
// not an error. Each invocation is recover-wrapped so a panicking handler
// cannot block its siblings; panics go to the configured PanicHandler.
//
// Dispatch is normally triggered by the detection engine's callback, but
// may be called directly (e.g. from tests or a command palette).
func (r *Registry) Dispatch(action string) {
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return
	}
	entries, found := r.handlers.Get(action)
	ph := r.panicHandler
	r.mu.RUnlock()

	if !found {
		return
	}

	// entries is a snapshot: handlers added or removed by a running
	// handler take effect on the next dispatch.
	for _, e := range entries {
		invoke(action, e.fn, ph)
	}
}

// invoke runs one handler with panic recovery.
func invoke(action string, fn Handler, ph PanicHandler) {
	defer func() {
		if rec := recover(); rec != nil {
			stack := debug.Stack()
			if ph != nil {
				func() {
					// A panicking panic handler must not take
					// down the dispatch loop either.
					defer func() { _ = recover() }()
					ph(action, rec, stack)
				}()
			}
		}
	}()

	fn(action)
}

// Close releases the registry. If the engine implements Unbinder, every
// binding's sequences are unregistered; the first unbind error is
// returned after all are attempted. Handlers are cleared either way.
// Closing twice is a no-op.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	bindings := r.bindings
	r.handlers.Clear()
	r.mu.Unlock()

	unbinder, ok := r.binder.(Unbinder)
	if !ok {
		return nil
	}

	var firstErr error
	for _, b := range bindings {
		if err := unbinder.Unbind(b.Keys); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// handlerID returns the identity used for RemoveHandler matching.
// Distinct functions have distinct code pointers; closures created from
// the same function literal share one.
func handlerID(fn Handler) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
