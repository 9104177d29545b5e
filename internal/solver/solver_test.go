package solver

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordsolver/internal/scoring"
	"wordsolver/internal/types"
)

var testDictionary = []string{
	"CRANE", "SLATE", "TRACE", "CRATE", "ROAST", "NOISE", "PIZZA", "MAMMA",
	"BRAIN", "GRAND", "PLAIN", "CHAIR", "SPARK", "QUART", "ABBEY", "ALLEY",
	"APPLE", "LLAMA", "KNAVE", "DRAMA", "HUMAN", "KARMA", "BACON", "MANGO",
	"MOUND", "BRICK", "PINKY",
}

func newTestSolver(t *testing.T, opts ...Option) *Solver {
	t.Helper()
	s, err := New(testDictionary, opts...)
	require.NoError(t, err)
	return s
}

func TestNew_InitialGuess(t *testing.T) {
	best, err := scoring.Best(testDictionary)
	require.NoError(t, err)

	s := newTestSolver(t)
	assert.Equal(t, best.Word, s.Guess())
	assert.Equal(t, types.Initialized, s.Status())
	assert.ElementsMatch(t, testDictionary, s.Candidates())
	assert.Empty(t, s.Rounds())

	again := newTestSolver(t)
	assert.Equal(t, s.Guess(), again.Guess())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNoCandidates))

	_, err = New(testDictionary, WithOpener("ZEBRA"))
	assert.True(t, errors.Is(err, ErrUnknownWord))
}

func TestNew_WithRanking(t *testing.T) {
	ranking, err := scoring.RankWords(testDictionary)
	require.NoError(t, err)
	ranking[0], ranking[1] = ranking[1], ranking[0]

	s := newTestSolver(t, WithRanking(ranking))
	assert.Equal(t, ranking[0].Word, s.Guess())
	assert.Equal(t, ranking, s.Ranking())

	ranking[0].Word = "MUTATED"
	assert.NotEqual(t, "MUTATED", s.Ranking()[0].Word)

	short := newTestSolver(t, WithRanking(ranking[:3]))
	assert.Len(t, short.Ranking(), len(testDictionary))
}

func TestNew_OpenerIsNormalized(t *testing.T) {
	s := newTestSolver(t, WithOpener(" slate "))
	assert.Equal(t, "SLATE", s.Guess())
}

func TestSubmitFeedback_SlateScenario(t *testing.T) {
	s := newTestSolver(t, WithOpener("SLATE"))
	before := s.Candidates()

	next, err := s.SubmitFeedback("NNWNN")
	require.NoError(t, err)

	after := s.Candidates()
	require.NotEmpty(t, after)
	assert.Subset(t, before, after)
	assert.Contains(t, after, next)
	assert.NotContains(t, after, "SLATE")
	for _, w := range after {
		assert.False(t, strings.ContainsAny(w, "SLTE"), "%s contains an absent letter", w)
		assert.Contains(t, w, "A")
		assert.NotEqual(t, 'A', rune(w[2]), "%s has A where it was tried", w)
	}
	assert.Equal(t, types.Solving, s.Status())
	assert.Equal(t, []types.Round{{Guess: "SLATE", Feedback: "NNWNN", Candidates: len(after)}}, s.Rounds())
}

func TestSubmitFeedback_CorrectPlacement(t *testing.T) {
	s := newTestSolver(t, WithOpener("CRANE"))
	_, err := s.SubmitFeedback("nnCnn")
	require.NoError(t, err)
	for _, w := range s.Candidates() {
		assert.Equal(t, byte('A'), w[2], w)
		assert.False(t, strings.ContainsAny(w, "CRNE"), w)
	}
}

// An Absent mark for a letter that is confirmed elsewhere in the same guess
// limits the count of that letter instead of excluding it everywhere.
func TestSubmitFeedback_DuplicateLetterAbsent(t *testing.T) {
	assert.Equal(t, "WCNNN", Evaluate("ALLEY", "PLAIN").String())

	s := newTestSolver(t, WithOpener("ALLEY"))
	_, err := s.SubmitFeedback("WCNNN")
	require.NoError(t, err)

	candidates := s.Candidates()
	assert.Contains(t, candidates, "PLAIN")
	assert.NotContains(t, candidates, "LLAMA")
	assert.NotContains(t, candidates, "ALLEY")
}

func TestConstraints_AbsentAfterEarlierConfirmation(t *testing.T) {
	c := newConstraints()
	c.record([]rune("ABCDE"), types.Feedback{types.Misplaced, types.Absent, types.Absent, types.Absent, types.Absent})
	c.record([]rune("FGHAI"), types.Feedback{types.Absent, types.Absent, types.Absent, types.Absent, types.Absent})

	assert.True(t, c.allows([]rune("QAZZZ")))
	assert.False(t, c.allows([]rune("QAAZZ")), "second A exceeds the confirmed count")
	assert.False(t, c.allows([]rune("AQZZZ")), "A was misplaced at position 1")
	assert.False(t, c.allows([]rune("QZZAZ")), "A was absent at position 4")
	assert.False(t, c.allows([]rune("QZZZZ")), "A must be present")
}

func TestSubmitFeedback_InvalidFeedbackLeavesStateUntouched(t *testing.T) {
	s := newTestSolver(t)
	guess := s.Guess()

	for _, code := range []string{"", "NNW", "NNWNNN", "NNWNX", "CC-CC"} {
		_, err := s.SubmitFeedback(code)
		assert.True(t, errors.Is(err, ErrInvalidFeedback), "code %q", code)
	}
	assert.Equal(t, guess, s.Guess())
	assert.Len(t, s.Candidates(), len(testDictionary))
	assert.Empty(t, s.Rounds())
	assert.Equal(t, Snapshot{Correct: []types.Placement{}, Misplaced: []types.Placement{}, Absent: []string{}}, s.Constraints())
}

func TestSubmitFeedback_Solved(t *testing.T) {
	s := newTestSolver(t, WithOpener("CRANE"))
	next, err := s.SubmitFeedback("ccccc")
	require.NoError(t, err)
	assert.Equal(t, "CRANE", next)
	assert.Equal(t, types.Solved, s.Status())

	_, err = s.SubmitFeedback("CCCCC")
	assert.True(t, errors.Is(err, ErrSolved))
}

func TestSubmitFeedback_Exhausted(t *testing.T) {
	s := newTestSolver(t, WithOpener("CRANE"))
	_, err := s.SubmitFeedback("CCCCW")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCandidates))
	assert.Equal(t, types.Exhausted, s.Status())
	assert.Empty(t, s.Candidates())
	assert.Empty(t, s.Guess())

	_, err = s.SubmitFeedback("NNNNN")
	assert.True(t, errors.Is(err, ErrNoCandidates))
}

func TestSubmitFeedback_MonotonicNarrowing(t *testing.T) {
	s := newTestSolver(t)
	target := "HUMAN"
	previous := s.Candidates()
	for s.Status() != types.Solved {
		_, err := s.SubmitFeedback(Evaluate(s.Guess(), target).String())
		require.NoError(t, err)
		current := s.Candidates()
		assert.Subset(t, previous, current)
		assert.Contains(t, current, target)
		previous = current
	}
	assert.Equal(t, target, s.Guess())
}

func TestSubmitFeedback_IndependentSessions(t *testing.T) {
	a := newTestSolver(t, WithOpener("SLATE"))
	b := newTestSolver(t, WithOpener("SLATE"))

	_, err := a.SubmitFeedback("NNNNN")
	require.NoError(t, err)

	assert.Len(t, b.Candidates(), len(testDictionary))
	assert.Empty(t, b.Constraints().Absent)
	assert.Equal(t, []string{"A", "E", "L", "S", "T"}, a.Constraints().Absent)
}

func TestConstraints_Snapshot(t *testing.T) {
	s := newTestSolver(t, WithOpener("ALLEY"))
	_, err := s.SubmitFeedback("WCNNN")
	require.NoError(t, err)

	snap := s.Constraints()
	assert.Equal(t, []types.Placement{{Letter: 'L', Position: 1}}, snap.Correct)
	assert.Equal(t, []types.Placement{{Letter: 'A', Position: 0}}, snap.Misplaced)
	assert.Equal(t, []string{"E", "L", "Y"}, snap.Absent)
}

func TestSubmitFeedback_RoundLimit(t *testing.T) {
	s := newTestSolver(t, WithOpener("SLATE"), WithMaxRounds(1))
	_, err := s.SubmitFeedback("NNWNN")
	require.NoError(t, err)
	_, err = s.SubmitFeedback("NNNNN")
	assert.True(t, errors.Is(err, ErrRoundLimit))
}

func TestRanking_MatchesCandidates(t *testing.T) {
	s := newTestSolver(t, WithOpener("SLATE"))
	_, err := s.SubmitFeedback("NNWNN")
	require.NoError(t, err)

	ranking := s.Ranking()
	require.Len(t, ranking, len(s.Candidates()))
	assert.Equal(t, s.Guess(), ranking[0].Word)
}
