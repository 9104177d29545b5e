package types

import (
	"strconv"
	"strings"
)

// WordLength is the number of letters in every dictionary word.
const WordLength = 5

// Symbol is a single position of round feedback.
type Symbol byte

const (
	Correct   Symbol = 'C' // letter is at this exact position
	Misplaced Symbol = 'W' // letter is in the target, elsewhere
	Absent    Symbol = 'N' // letter is not in the target beyond confirmed copies
)

// Feedback is one round of symbols, aligned with the guess that produced it.
type Feedback []Symbol

func (f Feedback) String() string {
	var b strings.Builder
	for _, s := range f {
		b.WriteByte(byte(s))
	}
	return b.String()
}

// Solved reports whether every position is Correct.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, s := range f {
		if s != Correct {
			return false
		}
	}
	return true
}

// LetterWeights maps a letter to its normalized weight in [0,1].
type LetterWeights map[rune]float64

// Placement is a letter pinned to a 0-based position.
type Placement struct {
	Letter   rune `json:"letter"`
	Position int  `json:"position"`
}

type Ranked struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Round records a completed feedback submission.
type Round struct {
	Guess      string `json:"guess"`
	Feedback   string `json:"feedback"`
	Candidates int    `json:"candidates"`
}

type Status int

const (
	Initialized Status = iota
	Solving
	Solved
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Solving:
		return "solving"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// MarshalText renders the status by name in JSON payloads.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalJSON renders the letter as a one-letter string.
func (p Placement) MarshalJSON() ([]byte, error) {
	return []byte(`{"letter":"` + string(p.Letter) + `","position":` + strconv.Itoa(p.Position) + `}`), nil
}
