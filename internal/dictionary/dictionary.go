// Package dictionary loads the fixed word list the solver narrows down.
package dictionary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"wordsolver/internal/types"
)

var ErrEmptyDictionary = errors.New("dictionary has no valid words")

// Entry is one word of a JSON word list. Hints are accepted and ignored.
type Entry struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// List is the JSON layout {"words":[{"word":"..."}]}.
type List struct {
	Words []Entry `json:"words"`
}

// Load reads a dictionary file. Files ending in .json hold either a List or a
// plain array of strings; anything else is one word per line.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dictionary: %s", path)
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("loading dictionary")

	if strings.EqualFold(filepath.Ext(path), ".json") {
		words, err := decodeJSON(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode dictionary: %s", path)
		}
		return Normalize(words)
	}
	return Read(bytes.NewReader(data))
}

// Read parses one word per line.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan dictionary")
	}
	return Normalize(words)
}

// Normalize uppercases words, drops blanks, drops words that are not
// exactly types.WordLength letters A-Z, and removes duplicates keeping the
// first occurrence.
func Normalize(raw []string) ([]string, error) {
	words := lo.FilterMap(raw, func(w string, _ int) (string, bool) {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			return "", false
		}
		if !Valid(w) {
			log.Warn().Str("word", w).Msg("skipping word: not 5 letters A-Z")
			return "", false
		}
		return w, true
	})
	words = lo.Uniq(words)
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}
	return words, nil
}

// Valid reports whether w is an uppercase word of types.WordLength letters.
func Valid(w string) bool {
	if len(w) != types.WordLength {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func decodeJSON(data []byte) ([]string, error) {
	var list List
	if err := json.Unmarshal(data, &list); err == nil {
		return lo.Map(list.Words, func(e Entry, _ int) string { return e.Word }), nil
	}
	var plain []string
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, err
	}
	return plain, nil
}
