package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"wordsolver/internal/dictionary"
	"wordsolver/internal/scoring"
)

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	setupLogging(isProduction, os.Getenv("LOG_LEVEL"))
	logInfo("Starting wordsolver in %s mode", envName(isProduction))

	path := getEnvString("DICTIONARY_PATH", DefaultDictionaryPath)
	words, err := dictionary.Load(path)
	if err != nil {
		logFatal("Failed to load dictionary: %v", err)
	}
	logInfo("Loaded %d words from %s", len(words), path)

	app, err := newApp(words, isProduction)
	if err != nil {
		logFatal("Failed to rank dictionary: %v", err)
	}
	logInfo("Opening guess for this dictionary: %s", app.OpeningRanking[0].Word)

	if isProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := app.setupRouter()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.sessionCleanupScheduler(ctx, SessionCleanupEvery)

	app.startServer(router)
}

// newApp builds the shared state from an already loaded dictionary.
func newApp(words []string, production bool) (*App, error) {
	ranking, err := scoring.RankWords(words)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank dictionary")
	}
	return &App{
		Dictionary:     words,
		OpeningRanking: ranking,
		Sessions:       make(map[string]*Session),
		IsProduction:   production,
		LimiterMap:     make(map[string]*rate.Limiter),
		StartTime:      time.Now(),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		SessionTimeout: getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		MaxRounds:      getEnvInt("MAX_ROUNDS", DefaultMaxRounds),
	}, nil
}

func (app *App) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), accessLogMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(noStoreMiddleware())

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteSession, app.sessionHandler)
	router.POST(RouteNewSession, app.rateLimitMiddleware(), app.newSessionHandler)
	router.POST(RouteFeedback, app.rateLimitMiddleware(), app.feedbackHandler)
	router.POST(RouteSimulate, app.rateLimitMiddleware(), app.simulateHandler)
	router.GET(RouteRank, app.rankHandler)
	router.GET(RouteHealthz, app.healthzHandler)
	return router
}

func (app *App) startServer(router *gin.Engine) {
	port := getEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
