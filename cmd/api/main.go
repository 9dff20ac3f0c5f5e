package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tunereads/internal/chat"
	"tunereads/internal/config"
	apphttp "tunereads/internal/http"
	"tunereads/internal/httpx"
	"tunereads/internal/logger"
	"tunereads/internal/platform/googlebooks"
	"tunereads/internal/platform/openai"
	"tunereads/internal/platform/spotify"
	"tunereads/internal/profile"
	"tunereads/internal/recommend"

	"go.uber.org/zap"
)

const (
	googleBooksRetries = 2
	maxRequestBody     = 1 << 20 // 1 MiB
)

func newRouter(
	authHandler *apphttp.AuthHandler,
	spotifyHandler *apphttp.SpotifyHandler,
	recommendationsHandler *apphttp.RecommendationsHandler,
	chatHandler *apphttp.ChatHandler,
	sessionOnly func(http.Handler) http.Handler,
) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("/api/auth/login", authHandler.Login)
	router.HandleFunc("/api/auth/callback", authHandler.Callback)
	router.HandleFunc("/api/auth/logout", authHandler.Logout)

	router.HandleFunc("/api/recommendations", recommendationsHandler.Recommend)
	router.HandleFunc("/api/chat", chatHandler.Chat)

	spotifyMux := http.NewServeMux()
	spotifyMux.HandleFunc("/api/spotify/listening-profile", spotifyHandler.ListeningProfile)
	spotifyMux.HandleFunc("/api/spotify/top-artists", spotifyHandler.TopArtists)
	spotifyMux.HandleFunc("/api/spotify/top-tracks", spotifyHandler.TopTracks)
	spotifyMux.HandleFunc("/api/spotify/recently-played", spotifyHandler.RecentlyPlayed)
	router.Handle("/api/spotify/", sessionOnly(spotifyMux))

	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	spotifyClient := spotify.NewClient(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.RedirectURL)
	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	booksClient := googlebooks.NewClient(cfg.GoogleBooks.APIKey, cfg.GoogleBooks.RPS, googleBooksRetries)

	assembler := recommend.NewAssembler(
		recommend.NewFormulator(openaiClient, log),
		recommend.NewSource(booksClient, log),
		recommend.NewReasoner(openaiClient, log),
		log,
	)
	profileService := profile.NewService(spotifyClient, log)
	chatService := chat.NewService(openaiClient, log)

	authHandler := apphttp.NewAuthHandler(spotifyClient, cfg.JWTSecret, cfg.FrontendURL, log)
	spotifyHandler := apphttp.NewSpotifyHandler(profileService, log)
	recommendationsHandler := apphttp.NewRecommendationsHandler(assembler)
	chatHandler := apphttp.NewChatHandler(chatService)

	sessionOnly := apphttp.SessionMiddleware(cfg.JWTSecret, spotifyClient, log)
	router := newRouter(authHandler, spotifyHandler, recommendationsHandler, chatHandler, sessionOnly)

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(maxRequestBody)(handler)
	handler = rateLimiter.Middleware(handler)
	handler = httpx.CORSMiddleware(cfg.AllowedOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(log)(handler)
	handler = httpx.AccessLogMiddleware(log)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
