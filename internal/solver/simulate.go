package solver

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"wordsolver/internal/types"
)

// Simulate plays a full session against a known target, scoring each guess
// with Evaluate, and returns the rounds played. The rounds are returned even
// when the session ends in an error.
func Simulate(dictionary []string, target string, opts ...Option) ([]types.Round, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	if !slices.Contains(dictionary, target) {
		return nil, errors.Wrapf(ErrUnknownWord, "target %s", target)
	}

	s, err := New(dictionary, opts...)
	if err != nil {
		return nil, err
	}
	for s.Status() != types.Solved {
		fb := Evaluate(s.Guess(), target)
		if _, err := s.SubmitFeedback(fb.String()); err != nil {
			return s.Rounds(), err
		}
	}
	return s.Rounds(), nil
}
