package tcellengine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/keyseq"
)

// specialKeys maps tcell named keys to keyseq keys. Entries here take
// precedence over the Ctrl+letter range, since tcell aliases several
// named keys into it (Enter is Ctrl+M, Tab is Ctrl+I, ...).
var specialKeys = map[tcell.Key]keyseq.Key{
	tcell.KeyEnter:      keyseq.KeyEnter,
	tcell.KeyTab:        keyseq.KeyTab,
	tcell.KeyEsc:        keyseq.KeyEscape,
	tcell.KeyBackspace:  keyseq.KeyBackspace,
	tcell.KeyBackspace2: keyseq.KeyBackspace,
	tcell.KeyDelete:     keyseq.KeyDelete,
	tcell.KeyInsert:     keyseq.KeyInsert,
	tcell.KeyHome:       keyseq.KeyHome,
	tcell.KeyEnd:        keyseq.KeyEnd,
	tcell.KeyPgUp:       keyseq.KeyPageUp,
	tcell.KeyPgDn:       keyseq.KeyPageDown,
	tcell.KeyUp:         keyseq.KeyUp,
	tcell.KeyDown:       keyseq.KeyDown,
	tcell.KeyLeft:       keyseq.KeyLeft,
	tcell.KeyRight:      keyseq.KeyRight,
}

// chordFromEvent converts a tcell key event to a chord. ok is false for
// keys this engine does not model.
func chordFromEvent(ev *tcell.EventKey) (keyseq.Chord, bool) {
	var mods keyseq.Modifier
	m := ev.Modifiers()
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(keyseq.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(keyseq.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(keyseq.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(keyseq.ModMeta)
	}

	k := ev.Key()

	if special, ok := specialKeys[k]; ok {
		return keyseq.SpecialChord(special, mods), true
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return keyseq.SpecialChord(keyseq.KeyF1+keyseq.Key(k-tcell.KeyF1), mods), true
	}

	// Control characters arrive as KeyCtrlA..KeyCtrlZ; report them as
	// the letter with Ctrl set so they match "ctrl+s" style specs.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + int(k-tcell.KeyCtrlA))
		return keyseq.RuneChord(r, mods.With(keyseq.ModCtrl)), true
	}

	if k == tcell.KeyRune {
		return keyseq.RuneChord(ev.Rune(), mods), true
	}

	return keyseq.Chord{}, false
}
