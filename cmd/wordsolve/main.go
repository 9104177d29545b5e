package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wordsolver/internal/dictionary"
	"wordsolver/internal/scoring"
	"wordsolver/internal/solver"
	"wordsolver/internal/types"
)

type options struct {
	dictPath  string
	target    string
	opener    string
	top       int
	maxRounds int
}

func main() {
	var (
		opts    options
		verbose bool
	)
	flag.StringVar(&opts.dictPath, "dict", "data/words.txt", "Dictionary file, one word per line or JSON")
	flag.StringVar(&opts.target, "target", "", "Simulate play against this word instead of reading feedback")
	flag.StringVar(&opts.opener, "opener", "", "First guess to play instead of the ranked best word")
	flag.IntVar(&opts.top, "top", 0, "Print the N best opening words and exit")
	flag.IntVar(&opts.maxRounds, "max-rounds", 0, "Stop after this many rounds (0 for no limit)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("wordsolve failed")
	}
}

func run(opts options, in io.Reader, out io.Writer) error {
	words, err := dictionary.Load(opts.dictPath)
	if err != nil {
		return err
	}
	log.Debug().Int("words", len(words)).Str("path", opts.dictPath).Msg("dictionary loaded")

	solverOpts := []solver.Option{solver.WithMaxRounds(opts.maxRounds)}
	if opts.opener != "" {
		solverOpts = append(solverOpts, solver.WithOpener(opts.opener))
	}

	switch {
	case opts.top > 0:
		return printTop(words, opts.top, out)
	case opts.target != "":
		return simulate(words, opts.target, solverOpts, out)
	}
	return interactive(words, solverOpts, in, out)
}

func printTop(words []string, n int, out io.Writer) error {
	ranked, err := scoring.RankWords(words)
	if err != nil {
		return err
	}
	for i, r := range scoring.Top(ranked, n) {
		fmt.Fprintf(out, "%3d. %s %.4f\n", i+1, r.Word, r.Score)
	}
	return nil
}

func simulate(words []string, target string, opts []solver.Option, out io.Writer) error {
	rounds, err := solver.Simulate(words, target, opts...)
	for i, r := range rounds {
		fmt.Fprintf(out, "%d. %s %s (%d left)\n", i+1, r.Guess, r.Feedback, r.Candidates)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Solved %s in %d round%s\n", strings.ToUpper(target), len(rounds), plural(len(rounds)))
	return nil
}

// interactive reads one C/W/N code per line for the printed guess.
func interactive(words []string, opts []solver.Option, in io.Reader, out io.Writer) error {
	s, err := solver.New(words, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Guess: %s\n", s.Guess())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		next, err := s.SubmitFeedback(line)
		switch {
		case errors.Is(err, solver.ErrInvalidFeedback):
			fmt.Fprintf(out, "Invalid feedback: %v\n", err)
			continue
		case err != nil:
			return err
		}
		if s.Status() == types.Solved {
			fmt.Fprintf(out, "Solved: %s\n", next)
			return nil
		}
		fmt.Fprintf(out, "Guess: %s (%d candidates)\n", next, len(s.Candidates()))
	}
	return scanner.Err()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
