// Package solver narrows a dictionary toward a hidden word from round
// feedback and proposes the next guess.
package solver

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"wordsolver/internal/scoring"
	"wordsolver/internal/types"
)

var (
	ErrInvalidFeedback = errors.New("invalid feedback")
	// ErrNoCandidates means the feedback so far is consistent with no word
	// in the dictionary.
	ErrNoCandidates = errors.New("no candidates left")
	ErrSolved       = errors.New("already solved")
	ErrUnknownWord  = errors.New("word not in dictionary")
	ErrRoundLimit   = errors.New("round limit reached")
)

type settings struct {
	opener    string
	maxRounds int
	ranking   []types.Ranked
}

// Option configures a Solver.
type Option func(*settings)

// WithOpener replaces the ranked first guess with word, which must be in
// the dictionary.
func WithOpener(word string) Option {
	return func(s *settings) {
		s.opener = strings.ToUpper(strings.TrimSpace(word))
	}
}

// WithMaxRounds caps the number of feedback submissions; zero means no cap.
func WithMaxRounds(n int) Option {
	return func(s *settings) {
		s.maxRounds = n
	}
}

// WithRanking reuses a ranking already computed for the same dictionary,
// such as the result of scoring.RankWords. A ranking whose length differs
// from the dictionary is ignored.
func WithRanking(ranking []types.Ranked) Option {
	return func(s *settings) {
		s.ranking = ranking
	}
}

// Solver owns the state of a single session. It is not safe for concurrent
// use; callers sharing one across goroutines must serialize access.
type Solver struct {
	constraints *Constraints
	candidates  []string
	ranking     []types.Ranked
	guess       string
	status      types.Status
	rounds      []types.Round
	maxRounds   int
}

// New seeds a solver with the whole dictionary and picks the opening guess.
// The dictionary slice is not modified or retained.
func New(dictionary []string, opts ...Option) (*Solver, error) {
	var cfg settings
	for _, o := range opts {
		o(&cfg)
	}
	if len(dictionary) == 0 {
		return nil, errors.Wrap(ErrNoCandidates, "empty dictionary")
	}

	candidates := slices.Clone(dictionary)
	ranking := slices.Clone(cfg.ranking)
	if len(ranking) != len(candidates) {
		var err error
		if ranking, err = scoring.RankWords(candidates); err != nil {
			return nil, errors.Wrap(err, "failed to rank dictionary")
		}
	}

	guess := ranking[0].Word
	if cfg.opener != "" {
		if !slices.Contains(candidates, cfg.opener) {
			return nil, errors.Wrapf(ErrUnknownWord, "opener %s", cfg.opener)
		}
		guess = cfg.opener
	}

	log.Debug().Int("candidates", len(candidates)).Str("guess", guess).Msg("solver initialized")

	return &Solver{
		constraints: newConstraints(),
		candidates:  candidates,
		ranking:     ranking,
		guess:       guess,
		status:      types.Initialized,
		maxRounds:   cfg.maxRounds,
	}, nil
}

// SubmitFeedback applies one round of feedback for the current guess and
// returns the next guess. The code is validated before any state changes.
func (s *Solver) SubmitFeedback(code string) (string, error) {
	switch s.status {
	case types.Solved:
		return s.guess, ErrSolved
	case types.Exhausted:
		return "", ErrNoCandidates
	}
	if s.maxRounds > 0 && len(s.rounds) >= s.maxRounds {
		return s.guess, errors.Wrapf(ErrRoundLimit, "%d rounds", s.maxRounds)
	}

	fb, err := ParseFeedback(code, utf8.RuneCountInString(s.guess))
	if err != nil {
		return s.guess, err
	}

	guess := s.guess
	s.constraints.record([]rune(guess), fb)
	survivors := lo.Filter(s.candidates, func(w string, _ int) bool {
		return s.constraints.allows([]rune(w))
	})
	s.candidates = survivors
	s.rounds = append(s.rounds, types.Round{
		Guess:      guess,
		Feedback:   fb.String(),
		Candidates: len(survivors),
	})

	log.Debug().
		Str("guess", guess).
		Str("feedback", fb.String()).
		Int("candidates", len(survivors)).
		Msg("feedback applied")

	if len(survivors) == 0 {
		s.status = types.Exhausted
		s.ranking = nil
		s.guess = ""
		return "", errors.Wrapf(ErrNoCandidates, "after %s scored %s", guess, fb)
	}
	if fb.Solved() {
		s.status = types.Solved
		return guess, nil
	}

	ranking, err := scoring.RankWords(survivors)
	if err != nil {
		return "", errors.Wrap(err, "failed to rank candidates")
	}
	s.ranking = ranking
	s.guess = ranking[0].Word
	s.status = types.Solving
	return s.guess, nil
}

// Guess returns the word to play next, or "" once exhausted.
func (s *Solver) Guess() string { return s.guess }

func (s *Solver) Status() types.Status { return s.status }

// Candidates returns a copy of the words still consistent with all feedback.
func (s *Solver) Candidates() []string { return slices.Clone(s.candidates) }

func (s *Solver) Rounds() []types.Round { return slices.Clone(s.rounds) }

// Ranking returns a copy of the latest ranking of the candidate set.
func (s *Solver) Ranking() []types.Ranked { return slices.Clone(s.ranking) }

func (s *Solver) Constraints() Snapshot { return s.constraints.snapshot() }
