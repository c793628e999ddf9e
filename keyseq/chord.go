package keyseq

import (
	"strings"
)

// Chord represents a single key press: one key plus active modifiers.
type Chord struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// RuneChord creates a chord for a character key.
func RuneChord(r rune, mods Modifier) Chord {
	return Chord{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// SpecialChord creates a chord for a special (non-character) key.
func SpecialChord(key Key, mods Modifier) Chord {
	return Chord{
		Key:       key,
		Modifiers: mods,
	}
}

// IsRune returns true if this is a character chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// IsModified returns true if any modifier is pressed.
// For character chords, Shift alone is not considered modified
// (the shift is already baked into the rune's case).
func (c Chord) IsModified() bool {
	if c.IsRune() {
		return c.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return c.Modifiers != ModNone
}

// normalizedModifiers drops Shift for character chords, since the rune
// itself carries the case. "Shift+A" and "A" describe the same press.
func (c Chord) normalizedModifiers() Modifier {
	if c.Key == KeyRune {
		return c.Modifiers.Without(ModShift)
	}
	return c.Modifiers
}

// Equals returns true if two chords describe the same key press.
func (c Chord) Equals(other Chord) bool {
	if c.Key != other.Key {
		return false
	}
	if c.Key == KeyRune && c.Rune != other.Rune {
		return false
	}
	return c.normalizedModifiers() == other.normalizedModifiers()
}

// String returns a canonical representation.
// Examples: "a", "A", "Ctrl+S", "Enter", "Ctrl+Shift+P"
func (c Chord) String() string {
	var parts []string

	if c.Modifiers.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if c.Modifiers.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if c.Modifiers.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	// Shift is only meaningful for non-character keys
	if c.Modifiers.Has(ModShift) && !c.IsRune() {
		parts = append(parts, "Shift")
	}

	var keyName string
	switch c.Key {
	case KeyRune:
		if c.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(c.Rune)
		}
	default:
		keyName = c.Key.String()
	}
	parts = append(parts, keyName)

	return strings.Join(parts, "+")
}
