package main

import "time"

// Solver session defaults
const (
	DefaultMaxRounds      = 6  // Rounds allowed per session, like the game itself
	RemainingListLimit    = 20 // Candidate lists at or below this size are included in views
	DefaultRankLimit      = 10
	MaxRankLimit          = 100
	SessionCleanupEvery   = time.Minute
	DefaultDictionaryPath = "data/words.txt"
)

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteSession    = "/session"
	RouteNewSession = "/session/new"
	RouteFeedback   = "/session/feedback"
	RouteSimulate   = "/simulate"
	RouteRank       = "/rank"
	RouteHealthz    = "/healthz"
)

// Error message constants
const (
	ErrorSessionOver     = "Session is over."
	ErrorInvalidFeedback = "Feedback must be 5 letters of C, W or N."
	ErrorNoCandidates    = "No word in the dictionary matches the feedback."
	ErrorRoundLimit      = "No more rounds allowed."
	ErrorUnknownWord     = "Word not in dictionary."
	ErrorBadRequest      = "Malformed request."
	ErrorInternal        = "Internal error."
)
