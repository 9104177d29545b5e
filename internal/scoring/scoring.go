// Package scoring ranks a word population by letter frequency.
//
// Weights are derived from the population being ranked, so the same word can
// score differently as the population shrinks between rounds.
package scoring

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"wordsolver/internal/types"
)

var (
	// ErrInconsistentWeightPopulation is returned when a word contains a
	// letter that the weight map was not built from.
	ErrInconsistentWeightPopulation = errors.New("letter missing from weight population")

	ErrEmptyPopulation = errors.New("empty word population")
)

// DegenerateWeight is assigned to every letter when all letters share the
// same occurrence count.
const DegenerateWeight = 1.0

// ComputeLetterWeights counts every letter occurrence across words and
// min-max normalizes the counts into [0,1].
func ComputeLetterWeights(words []string) types.LetterWeights {
	counts := make(map[rune]int)
	for _, w := range words {
		for _, r := range w {
			counts[r]++
		}
	}
	weights := make(types.LetterWeights, len(counts))
	if len(counts) == 0 {
		return weights
	}

	values := lo.Values(counts)
	lowest, highest := lo.Min(values), lo.Max(values)
	if lowest == highest {
		for r := range counts {
			weights[r] = DegenerateWeight
		}
		return weights
	}

	span := float64(highest - lowest)
	for r, n := range counts {
		weights[r] = float64(n-lowest) / span
	}
	return weights
}

// ScoreWord sums the weights of the distinct letters in word and scales the
// sum by distinct/len(word), so repeated letters lower the score.
func ScoreWord(word string, weights types.LetterWeights) (float64, error) {
	letters := []rune(word)
	if len(letters) == 0 {
		return 0, nil
	}
	// Summation order is fixed so anagrams score identically.
	distinct := lo.Uniq(letters)
	slices.Sort(distinct)

	var sum float64
	for _, r := range distinct {
		w, ok := weights[r]
		if !ok {
			return 0, errors.Wrapf(ErrInconsistentWeightPopulation, "letter %q of %s", r, word)
		}
		sum += w
	}
	return sum * float64(len(distinct)) / float64(len(letters)), nil
}

// RankWords scores every word against weights computed from the same words
// and orders them by descending score. Equal scores are ordered by word.
func RankWords(words []string) ([]types.Ranked, error) {
	if len(words) == 0 {
		return nil, ErrEmptyPopulation
	}
	weights := ComputeLetterWeights(words)

	ranked := make([]types.Ranked, 0, len(words))
	for _, w := range words {
		score, err := ScoreWord(w, weights)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, types.Ranked{Word: w, Score: score})
	}

	slices.SortFunc(ranked, compareRanked)
	log.Debug().
		Int("population", len(words)).
		Str("best", ranked[0].Word).
		Float64("score", ranked[0].Score).
		Msg("ranked words")
	return ranked, nil
}

func compareRanked(a, b types.Ranked) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	}
	return strings.Compare(a.Word, b.Word)
}

// Best returns the highest ranked word of the population.
func Best(words []string) (types.Ranked, error) {
	ranked, err := RankWords(words)
	if err != nil {
		return types.Ranked{}, err
	}
	return ranked[0], nil
}

// Top returns at most n entries from the head of ranking.
func Top(ranking []types.Ranked, n int) []types.Ranked {
	if n <= 0 || n >= len(ranking) {
		return ranking
	}
	return ranking[:n]
}
