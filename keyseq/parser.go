package keyseq

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a Chord.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "ctrl+=", "Alt+F4", "mod+q"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	// Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// modifier+key format (Ctrl+S, mod+q, ctrl+=)
	if strings.Contains(spec, "+") && len(spec) > 1 {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc".
func parseVimStyle(inner string) (Chord, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Chord{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	keyPart := parts[len(parts)-1]

	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d": // D is Vim's notation for command/meta
			mods = mods.With(ModMeta)
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Chord, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Chord{}, ErrInvalidSpec
	}

	// A trailing "+" means the key itself is the plus sign ("ctrl++").
	keyPart := strings.TrimSpace(parts[len(parts)-1])
	modParts := parts[:len(parts)-1]
	if keyPart == "" {
		keyPart = "+"
		modParts = parts[:len(parts)-2]
		if len(modParts) == 0 {
			return Chord{}, ErrInvalidSpec
		}
	}

	var mods Modifier
	for _, p := range modParts {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Chord, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Chord{}, ErrInvalidSpec
	}

	lower := strings.ToLower(keyPart)

	switch lower {
	case "space":
		return RuneChord(' ', mods), nil
	case "lt":
		return RuneChord('<', mods), nil
	case "gt":
		return RuneChord('>', mods), nil
	case "bar":
		return RuneChord('|', mods), nil
	case "bslash":
		return RuneChord('\\', mods), nil
	case "plus":
		return RuneChord('+', mods), nil
	case "minus":
		return RuneChord('-', mods), nil
	}

	if key := KeyFromName(lower); key != KeyNone {
		return SpecialChord(key, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		// Shift+letter describes the uppercase character
		if mods.Has(ModShift) && unicode.IsLower(r) {
			r = unicode.ToUpper(r)
		}
		if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
		}
		return RuneChord(r, mods), nil
	}

	return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
