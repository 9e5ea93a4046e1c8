// Package typing implements a typewriter loop: each phrase of a cyclic list is
// revealed character by character, held, deleted character by character, and
// the loop moves on to the next phrase, forever.
package typing

import (
	"errors"
	"time"
	"unicode/utf8"
)

// ErrNoPhrases is returned when a sequence is built from an empty list
var ErrNoPhrases = errors.New("typing: phrase list is empty")

// Phase is the state of the cursor within the current phrase
type Phase int

const (
	Typing Phase = iota
	Holding
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "Typing"
	case Holding:
		return "Holding"
	case Deleting:
		return "Deleting"
	default:
		return "Unknown"
	}
}

// Sequence is an ordered, cyclic, read-only list of phrases
type Sequence struct {
	phrases []string
}

// NewSequence copies phrases into a sequence
func NewSequence(phrases ...string) (Sequence, error) {
	if len(phrases) == 0 {
		return Sequence{}, ErrNoPhrases
	}
	return Sequence{phrases: append([]string(nil), phrases...)}, nil
}

// Len returns the number of phrases
func (s Sequence) Len() int {
	return len(s.phrases)
}

// At returns phrase i, wrapping modulo the sequence length
func (s Sequence) At(i int) string {
	n := len(s.phrases)
	if n == 0 {
		return ""
	}
	return s.phrases[((i%n)+n)%n]
}

// runeLen is the phrase length in characters
func (s Sequence) runeLen(i int) int {
	return utf8.RuneCountInString(s.At(i))
}

// Cursor is the loop's mutable position
type Cursor struct {
	Index int // current phrase
	Count int // visible characters, 0..len(phrase)
	Phase Phase
}

// Text returns the first Count characters of the current phrase
func (c Cursor) Text(seq Sequence) string {
	phrase := seq.At(c.Index)
	if c.Count <= 0 {
		return ""
	}
	n := 0
	for i := range phrase {
		if n == c.Count {
			return phrase[:i]
		}
		n++
	}
	return phrase
}

// Config holds the per-step delays
type Config struct {
	TypeSpeed time.Duration // per revealed character
	BackSpeed time.Duration // per deleted character
	Pause     time.Duration // hold after full reveal
}

// DefaultConfig returns the standard timing
func DefaultConfig() Config {
	return Config{
		TypeSpeed: 80 * time.Millisecond,
		BackSpeed: 40 * time.Millisecond,
		Pause:     1500 * time.Millisecond,
	}
}

// Next returns the state that follows c.
//
//	Typing(i, c<len)  -> Typing(i, c+1)
//	Typing(i, len)    -> Holding(i, len)
//	Holding(i, len)   -> Deleting(i, len-1)
//	Deleting(i, c>0)  -> Deleting(i, c-1)
//	Deleting(i, 0)    -> Typing(i+1 mod N, 0)
//
// Holding shows the full phrase and opens the delete phase, so one phrase
// round trip takes len+1+(len+1) transitions.
func Next(c Cursor, seq Sequence) Cursor {
	n := seq.runeLen(c.Index)
	switch c.Phase {
	case Typing:
		if c.Count < n {
			return Cursor{Index: c.Index, Count: c.Count + 1, Phase: Typing}
		}
		return Cursor{Index: c.Index, Count: n, Phase: Holding}
	case Holding:
		if n == 0 {
			return advance(c, seq)
		}
		return Cursor{Index: c.Index, Count: n - 1, Phase: Deleting}
	default:
		if c.Count > 0 {
			return Cursor{Index: c.Index, Count: c.Count - 1, Phase: Deleting}
		}
		return advance(c, seq)
	}
}

func advance(c Cursor, seq Sequence) Cursor {
	next := 0
	if seq.Len() > 0 {
		next = (c.Index + 1) % seq.Len()
	}
	return Cursor{Index: next, Count: 0, Phase: Typing}
}

// Delay is how long the loop stays in state c before applying Next
func Delay(c Cursor, seq Sequence, cfg Config) time.Duration {
	switch c.Phase {
	case Typing:
		if c.Count < seq.runeLen(c.Index) {
			return cfg.TypeSpeed
		}
		return cfg.Pause
	default:
		return cfg.BackSpeed
	}
}

// RoundTrip is the number of transitions that takes phrase i from
// Typing(i, 0) back to Typing(i+1, 0).
func RoundTrip(seq Sequence, i int) int {
	n := seq.runeLen(i)
	return n + 1 + (n + 1)
}
