package solver

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"wordsolver/internal/types"
)

// Constraints accumulates everything learned from feedback. Nothing is ever
// removed from it.
//
// An Absent mark only excludes a letter beyond the number of copies already
// confirmed present, so a guess with a doubled letter that is once Misplaced
// and once Absent still keeps words containing one copy of that letter.
type Constraints struct {
	correct   map[types.Placement]struct{}
	misplaced map[types.Placement]struct{}
	absent    map[rune]struct{}

	// absentAt holds every position a letter was marked Absent at.
	absentAt map[types.Placement]struct{}
	// minCount is the largest number of copies of a letter confirmed in
	// a single round.
	minCount map[rune]int
	// ceiling is the smallest confirmed count seen in a round where the
	// letter was also marked Absent.
	ceiling map[rune]int
}

func newConstraints() *Constraints {
	return &Constraints{
		correct:   make(map[types.Placement]struct{}),
		misplaced: make(map[types.Placement]struct{}),
		absent:    make(map[rune]struct{}),
		absentAt:  make(map[types.Placement]struct{}),
		minCount:  make(map[rune]int),
		ceiling:   make(map[rune]int),
	}
}

func (c *Constraints) record(guess []rune, fb types.Feedback) {
	confirmed := make(map[rune]int)
	for i, s := range fb {
		p := types.Placement{Letter: guess[i], Position: i}
		switch s {
		case types.Correct:
			c.correct[p] = struct{}{}
			confirmed[p.Letter]++
		case types.Misplaced:
			c.misplaced[p] = struct{}{}
			confirmed[p.Letter]++
		case types.Absent:
			c.absent[p.Letter] = struct{}{}
			c.absentAt[p] = struct{}{}
		}
	}

	for r, n := range confirmed {
		if n > c.minCount[r] {
			c.minCount[r] = n
		}
	}
	for i, s := range fb {
		if s != types.Absent {
			continue
		}
		r := guess[i]
		if limit, ok := c.ceiling[r]; !ok || confirmed[r] < limit {
			c.ceiling[r] = confirmed[r]
		}
	}
}

// allows reports whether word is consistent with every recorded constraint.
func (c *Constraints) allows(word []rune) bool {
	at := func(p types.Placement) bool {
		return p.Position < len(word) && word[p.Position] == p.Letter
	}

	for p := range c.correct {
		if !at(p) {
			return false
		}
	}
	for p := range c.misplaced {
		if at(p) {
			return false
		}
	}
	for p := range c.absentAt {
		if at(p) {
			return false
		}
	}

	counts := lo.CountValues(word)
	for r, n := range c.minCount {
		if counts[r] < n {
			return false
		}
	}
	for r, limit := range c.ceiling {
		if counts[r] > max(limit, c.minCount[r]) {
			return false
		}
	}
	return true
}

// Snapshot is a read-only view of recorded constraints.
type Snapshot struct {
	Correct   []types.Placement `json:"correct"`
	Misplaced []types.Placement `json:"misplaced"`
	Absent    []string          `json:"absent"`
}

func (c *Constraints) snapshot() Snapshot {
	absent := lo.Map(lo.Keys(c.absent), func(r rune, _ int) string { return string(r) })
	slices.Sort(absent)
	return Snapshot{
		Correct:   sortedPlacements(c.correct),
		Misplaced: sortedPlacements(c.misplaced),
		Absent:    absent,
	}
}

func sortedPlacements(set map[types.Placement]struct{}) []types.Placement {
	out := lo.Keys(set)
	slices.SortFunc(out, func(a, b types.Placement) int {
		if a.Position != b.Position {
			return cmp.Compare(a.Position, b.Position)
		}
		return cmp.Compare(a.Letter, b.Letter)
	})
	return out
}
