package keybind

import (
	"errors"
	"fmt"
	"strings"
)

// Binding pairs an action name with the key sequences that trigger it.
// Bindings are supplied at construction time and immutable afterwards.
type Binding struct {
	// Action is the application-defined event identifier.
	// Examples: "zoom-in", "file.save", "quit"
	Action string `json:"action" toml:"action"`

	// Keys are the raw key sequences for this action. Their syntax is
	// interpreted entirely by the detection engine, not by the registry.
	// Examples: "ctrl+=", "mod+q", "g g"
	Keys []string `json:"keys" toml:"keys"`
}

// NewBinding creates a binding for an action with one or more sequences.
func NewBinding(action string, keys ...string) Binding {
	return Binding{
		Action: action,
		Keys:   keys,
	}
}

// Validate checks that the binding names an action and at least one
// non-blank key sequence.
func (b Binding) Validate() error {
	if b.Action == "" {
		return errors.New("empty action")
	}
	if len(b.Keys) == 0 {
		return fmt.Errorf("binding %q: no key sequences", b.Action)
	}
	for i, k := range b.Keys {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("binding %q: empty key sequence at index %d", b.Action, i)
		}
	}
	return nil
}
