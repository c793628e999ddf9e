package keyseq

import "strings"

// Sequence represents a series of chords forming a shortcut.
// Examples: "g g" (two presses), "Ctrl+X Ctrl+S", or a single "Ctrl+S".
type Sequence struct {
	// Chords contains the key presses in order.
	Chords []Chord
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{
		Chords: make([]Chord, 0, 4), // Most shortcuts are short
	}
}

// NewSequenceFrom creates a sequence from the given chords.
func NewSequenceFrom(chords ...Chord) *Sequence {
	return &Sequence{Chords: chords}
}

// Len returns the number of chords in the sequence.
func (s *Sequence) Len() int {
	return len(s.Chords)
}

// IsEmpty returns true if the sequence has no chords.
func (s *Sequence) IsEmpty() bool {
	return len(s.Chords) == 0
}

// Add appends a chord to the sequence.
func (s *Sequence) Add(c Chord) {
	s.Chords = append(s.Chords, c)
}

// Clear removes all chords from the sequence.
func (s *Sequence) Clear() {
	s.Chords = s.Chords[:0]
}

// String returns a human-readable representation like "Ctrl+X Ctrl+S".
func (s *Sequence) String() string {
	if len(s.Chords) == 0 {
		return ""
	}
	parts := make([]string, len(s.Chords))
	for i, c := range s.Chords {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Equals returns true if two sequences are identical.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Chords) != len(other.Chords) {
		return false
	}
	for i, c := range s.Chords {
		if !c.Equals(other.Chords[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if this sequence starts with the given prefix.
func (s *Sequence) HasPrefix(prefix *Sequence) bool {
	if prefix == nil || prefix.IsEmpty() {
		return true
	}
	if len(prefix.Chords) > len(s.Chords) {
		return false
	}
	for i, c := range prefix.Chords {
		if !c.Equals(s.Chords[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return nil
	}
	chords := make([]Chord, len(s.Chords))
	copy(chords, s.Chords)
	return &Sequence{Chords: chords}
}

// ParseSequence parses a key sequence string into a Sequence.
//
// Space-separated parts are parsed as individual chords ("g g",
// "Ctrl+X Ctrl+S"). Without spaces the string is first tried as a single
// chord ("ctrl+=", "mod+q", "<C-s>"), then as a continuous run of
// characters and <...> groups ("gg", "<C-x><C-s>", "diw").
func ParseSequence(s string) (*Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewSequence(), nil
	}

	seq := NewSequence()

	if strings.Contains(s, " ") {
		for _, part := range strings.Fields(s) {
			chord, err := Parse(part)
			if err != nil {
				return nil, err
			}
			seq.Add(chord)
		}
		return seq, nil
	}

	// Single chord first: "ctrl+=" must not decompose into c,t,r,l,+,=
	if chord, err := Parse(s); err == nil {
		seq.Add(chord)
		return seq, nil
	}

	// Continuous run
	i := 0
	for i < len(s) {
		if s[i] == '<' {
			end := strings.IndexByte(s[i:], '>')
			if end == -1 {
				// No closing >, treat as literal <
				seq.Add(RuneChord('<', ModNone))
				i++
				continue
			}
			chord, err := Parse(s[i : i+end+1])
			if err != nil {
				return nil, err
			}
			seq.Add(chord)
			i += end + 1
			continue
		}
		seq.Add(RuneChord(rune(s[i]), ModNone))
		i++
	}

	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) *Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
