package main

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"wordsolver/internal/scoring"
	"wordsolver/internal/solver"
	"wordsolver/internal/types"
)

// newSolver seeds a solver with the shared dictionary and its precomputed
// opening ranking.
func (app *App) newSolver() (*solver.Solver, error) {
	return solver.New(app.Dictionary,
		solver.WithRanking(app.OpeningRanking),
		solver.WithMaxRounds(app.MaxRounds))
}

// applyFeedback submits one round to the session's solver.
func (app *App) applyFeedback(ctx context.Context, sessionID string, sess *Session, code string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	logger := zerolog.Ctx(ctx)
	previous := sess.Solver.Guess()
	next, err := sess.Solver.SubmitFeedback(code)
	if err != nil {
		logger.Warn().Err(err).Str("session", sessionID).Str("guess", previous).Str("feedback", code).Msg("feedback rejected")
		return err
	}

	event := logger.Info().
		Str("session", sessionID).
		Str("guess", previous).
		Str("feedback", code).
		Int("candidates", len(sess.Solver.Candidates()))
	if sess.Solver.Status() == types.Solved {
		event.Msg("session solved")
	} else {
		event.Str("next", next).Msg("feedback applied")
	}
	return nil
}

// view renders the session for JSON responses.
func (app *App) view(sessionID string, sess *Session) SessionView {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s := sess.Solver
	candidates := s.Candidates()
	history := s.Rounds()
	v := SessionView{
		SessionID:   sessionID,
		Guess:       s.Guess(),
		Status:      s.Status(),
		Rounds:      len(history),
		Candidates:  len(candidates),
		Top:         scoring.Top(s.Ranking(), DefaultRankLimit),
		Constraints: s.Constraints(),
		History:     history,
	}
	if len(candidates) <= RemainingListLimit {
		v.Remaining = candidates
	}
	return v
}

// simulate plays a session against a known target.
func (app *App) simulate(ctx context.Context, req SimulateRequest) (SimulateResponse, error) {
	opts := []solver.Option{
		solver.WithRanking(app.OpeningRanking),
		solver.WithMaxRounds(app.MaxRounds),
	}
	if req.Opener != "" {
		opts = append(opts, solver.WithOpener(req.Opener))
	}

	rounds, err := solver.Simulate(app.Dictionary, req.Target, opts...)
	resp := SimulateResponse{Target: req.Target, Rounds: rounds}
	if resp.Rounds == nil {
		resp.Rounds = []types.Round{}
	}
	switch {
	case errors.Is(err, solver.ErrUnknownWord):
		return resp, err
	case err != nil:
		resp.Error = err.Error()
	default:
		resp.Solved = true
	}
	zerolog.Ctx(ctx).Info().
		Str("target", req.Target).
		Int("rounds", len(resp.Rounds)).
		Bool("solved", resp.Solved).
		Msg("simulation finished")
	return resp, nil
}

// statusFor maps solver errors onto an HTTP status and a user-facing message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, solver.ErrInvalidFeedback):
		return http.StatusBadRequest, ErrorInvalidFeedback
	case errors.Is(err, solver.ErrUnknownWord):
		return http.StatusBadRequest, ErrorUnknownWord
	case errors.Is(err, solver.ErrNoCandidates):
		return http.StatusConflict, ErrorNoCandidates
	case errors.Is(err, solver.ErrSolved):
		return http.StatusConflict, ErrorSessionOver
	case errors.Is(err, solver.ErrRoundLimit):
		return http.StatusConflict, ErrorRoundLimit
	}
	return http.StatusInternalServerError, ErrorInternal
}
