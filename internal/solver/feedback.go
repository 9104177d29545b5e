package solver

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"wordsolver/internal/types"
)

// ParseFeedback validates a C/W/N code against the expected length.
// Letters are accepted in either case and surrounding blanks are ignored.
func ParseFeedback(code string, length int) (types.Feedback, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if n := utf8.RuneCountInString(code); n != length {
		return nil, errors.Wrapf(ErrInvalidFeedback, "got %d symbols, want %d", n, length)
	}

	fb := make(types.Feedback, 0, length)
	for i, r := range []rune(code) {
		switch r {
		case rune(types.Correct), rune(types.Misplaced), rune(types.Absent):
			fb = append(fb, types.Symbol(r))
		default:
			return nil, errors.Wrapf(ErrInvalidFeedback, "unrecognized symbol %q at position %d", r, i+1)
		}
	}
	return fb, nil
}

// Evaluate produces the feedback a player would see for guess when the
// hidden word is target. Exact matches are claimed first so duplicate
// letters are only marked Misplaced while unclaimed copies remain.
func Evaluate(guess, target string) types.Feedback {
	g, t := []rune(guess), []rune(target)
	fb := make(types.Feedback, len(g))
	remaining := make(map[rune]int)

	for i := range g {
		if i < len(t) && g[i] == t[i] {
			fb[i] = types.Correct
			continue
		}
		if i < len(t) {
			remaining[t[i]]++
		}
	}
	for i := len(g); i < len(t); i++ {
		remaining[t[i]]++
	}

	for i := range g {
		if fb[i] == types.Correct {
			continue
		}
		if remaining[g[i]] > 0 {
			fb[i] = types.Misplaced
			remaining[g[i]]--
		} else {
			fb[i] = types.Absent
		}
	}
	return fb
}
