package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"wordsolver/internal/solver"
	"wordsolver/internal/types"
)

// App holds the shared dictionary and every live solver session.
type App struct {
	Dictionary     []string
	OpeningRanking []types.Ranked
	Sessions       map[string]*Session
	SessionMutex   sync.RWMutex
	IsProduction   bool
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
	StartTime      time.Time
	CookieMaxAge   time.Duration
	SessionTimeout time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	MaxRounds      int
}

// Session is one player's solver plus bookkeeping for expiry.
type Session struct {
	mu             sync.Mutex // Serializes feedback on Solver
	Solver         *solver.Solver
	LastAccessTime time.Time
}

// SessionView is the JSON rendering of a session.
type SessionView struct {
	SessionID   string          `json:"sessionId"`
	Guess       string          `json:"guess"`
	Status      types.Status    `json:"status"`
	Rounds      int             `json:"rounds"`
	Candidates  int             `json:"candidates"`
	Remaining   []string        `json:"remaining,omitempty"` // Only when the list is short
	Top         []types.Ranked  `json:"top"`
	Constraints solver.Snapshot `json:"constraints"`
	History     []types.Round   `json:"history"`
}

// FeedbackRequest carries one round of C/W/N feedback as JSON or form data.
type FeedbackRequest struct {
	Feedback string `json:"feedback" form:"feedback" binding:"required"`
}

// SimulateRequest asks the server to play a whole session against target.
type SimulateRequest struct {
	Target string `json:"target" binding:"required"`
	Opener string `json:"opener"`
}

type SimulateResponse struct {
	Target string        `json:"target"`
	Solved bool          `json:"solved"`
	Rounds []types.Round `json:"rounds"`
	Error  string        `json:"error,omitempty"`
}
