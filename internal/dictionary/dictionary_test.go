package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRead(t *testing.T) {
	input := "crane\n  Slate \n\nTOOLONG\nab\nCRANE\nna1ve\nroast\n"
	words, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE", "ROAST"}, words)
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader("\n\nfoo\n"))
	assert.True(t, errors.Is(err, ErrEmptyDictionary))
}

func TestLoad_Text(t *testing.T) {
	path := writeFile(t, "words.txt", "crane\nslate\n")
	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, words)
}

func TestLoad_JSONList(t *testing.T) {
	path := writeFile(t, "words.json", `{"words":[{"word":"apple","hint":"A fruit"},{"word":"table","hint":"Furniture"}]}`)
	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "TABLE"}, words)
}

func TestLoad_JSONArray(t *testing.T) {
	path := writeFile(t, "accepted.JSON", `["apple","peach","apple"]`)
	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "PEACH"}, words)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", `{"words":`))
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"CRANE", true},
		{"crane", false},
		{"CRAN", false},
		{"CRAN3", false},
		{"ÉCRAN", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.word), "Valid(%q)", tt.word)
	}
}
