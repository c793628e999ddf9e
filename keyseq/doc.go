// Package keyseq provides key chord and sequence types with parsing.
//
// This package defines the types a detection engine uses to describe
// keyboard shortcuts:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Chord: A single key press with modifiers
//   - Sequence: A series of chords forming a shortcut
//
// # Key Specifications
//
// Chord specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "ctrl+=", "mod+q", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
//
// "mod" names the platform command key (Cmd on macOS, Win elsewhere).
//
// # Sequences
//
// Multi-chord shortcuts are written space-separated ("g g",
// "Ctrl+X Ctrl+S") or as a continuous run ("gg", "<C-x><C-s>").
package keyseq
