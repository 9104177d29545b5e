package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = app.issueSessionCookie(c)
		zerolog.Ctx(c.Request.Context()).Info().Str("session", sessionID).Msg("created new session id")
	}
	return sessionID
}

func (app *App) issueSessionCookie(c *gin.Context) string {
	sessionID := uuid.NewString()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", app.IsProduction, true)
	return sessionID
}

// getSession returns the live session for sessionID, starting one if needed.
func (app *App) getSession(ctx context.Context, sessionID string) (*Session, error) {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	if sess, ok := app.Sessions[sessionID]; ok {
		sess.LastAccessTime = time.Now()
		return sess, nil
	}
	return app.startSessionLocked(ctx, sessionID)
}

// resetSession discards any existing solver for sessionID and starts over.
func (app *App) resetSession(ctx context.Context, sessionID string) (*Session, error) {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	delete(app.Sessions, sessionID)
	return app.startSessionLocked(ctx, sessionID)
}

func (app *App) dropSession(sessionID string) {
	app.SessionMutex.Lock()
	delete(app.Sessions, sessionID)
	app.SessionMutex.Unlock()
}

func (app *App) startSessionLocked(ctx context.Context, sessionID string) (*Session, error) {
	s, err := app.newSolver()
	if err != nil {
		return nil, err
	}
	sess := &Session{Solver: s, LastAccessTime: time.Now()}
	app.Sessions[sessionID] = sess
	zerolog.Ctx(ctx).Info().Str("session", sessionID).Str("opener", s.Guess()).Msg("started solver session")
	return sess, nil
}

func (app *App) sessionCount() int {
	app.SessionMutex.RLock()
	defer app.SessionMutex.RUnlock()
	return len(app.Sessions)
}

// cleanupExpiredSessions drops sessions idle for longer than SessionTimeout
// and returns how many were removed.
func (app *App) cleanupExpiredSessions(now time.Time) int {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	removed := 0
	for id, sess := range app.Sessions {
		if sess.LastAccessTime.IsZero() || now.Sub(sess.LastAccessTime) > app.SessionTimeout {
			delete(app.Sessions, id)
			removed++
		}
	}
	return removed
}

// sessionCleanupScheduler sweeps expired sessions until ctx is done.
func (app *App) sessionCleanupScheduler(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := app.cleanupExpiredSessions(now); n > 0 {
				logInfo("Session cleanup removed %d expired session%s", n, plural(n))
			}
		}
	}
}
