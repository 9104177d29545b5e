package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wordsolver/internal/scoring"
)

// sessionHandler returns the current session, starting one if needed.
func (app *App) sessionHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	sess, err := app.getSession(ctx, sessionID)
	if err != nil {
		app.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.view(sessionID, sess))
}

// newSessionHandler discards the current solver, optionally rotating the session ID.
func (app *App) newSessionHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	if c.Query("reset") == "1" {
		app.dropSession(sessionID)
		sessionID = app.issueSessionCookie(c)
		zerolog.Ctx(ctx).Info().Str("session", sessionID).Msg("rotated session id")
	}

	sess, err := app.resetSession(ctx, sessionID)
	if err != nil {
		app.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.view(sessionID, sess))
}

// feedbackHandler applies one round of C/W/N feedback to the current guess.
func (app *App) feedbackHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	var req FeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidFeedback})
		return
	}

	sess, err := app.getSession(ctx, sessionID)
	if err != nil {
		app.abortWithError(c, err)
		return
	}
	if err := app.applyFeedback(ctx, sessionID, sess, req.Feedback); err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg, "session": app.view(sessionID, sess)})
		return
	}
	c.JSON(http.StatusOK, app.view(sessionID, sess))
}

// simulateHandler plays a whole session against a target word.
func (app *App) simulateHandler(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorBadRequest})
		return
	}
	req.Target = normalizeWord(req.Target)
	req.Opener = normalizeWord(req.Opener)

	resp, err := app.simulate(c.Request.Context(), req)
	if err != nil {
		app.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// rankHandler lists the best opening words for the whole dictionary.
func (app *App) rankHandler(c *gin.Context) {
	limit := DefaultRankLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := parseInt(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrorBadRequest})
			return
		}
		limit = min(n, MaxRankLimit)
	}
	c.JSON(http.StatusOK, gin.H{
		"population": len(app.Dictionary),
		"words":      scoring.Top(app.OpeningRanking, limit),
	})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          envName(app.IsProduction),
		"words_loaded": len(app.Dictionary),
		"sessions":     app.sessionCount(),
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (app *App) abortWithError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// normalizeWord trims and uppercases a word for comparison.
func normalizeWord(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}
