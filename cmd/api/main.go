package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ugochukwu16henry/foundationprototype/internal/analysis/counter"
	"github.com/ugochukwu16henry/foundationprototype/internal/config"
	"github.com/ugochukwu16henry/foundationprototype/internal/engine"
	"github.com/ugochukwu16henry/foundationprototype/internal/handler"
	"github.com/ugochukwu16henry/foundationprototype/internal/model/giving"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/analytics"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/assistant"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/chat"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/consent"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	responder := engine.Default()
	if cfg.Chat.RulesFile != "" {
		responder, err = engine.FromFile(cfg.Chat.RulesFile)
		if err != nil {
			log.Fatalf("failed to load chat rules: %v", err)
		}
		log.Printf("chat rules loaded from %s", cfg.Chat.RulesFile)
	}

	chatService := chat.NewService()
	assistantService := assistant.NewService(responder, chatService, assistant.Config{
		TypingDelay: cfg.Chat.TypingDelay,
		Greeting:    engine.Greeting,
	})

	stats, err := counter.ApplyOverrides(counter.SeedStats(), cfg.Stats.Overrides)
	if err != nil {
		log.Fatalf("failed to apply stats overrides: %v", err)
	}

	var analyticsService *analytics.Service
	var limiter *analytics.Limiter
	if cfg.Analytics.Enabled {
		analyticsService = analytics.NewService(analytics.LogSink{}, cfg.Analytics.QueueSize)
		limiter = analytics.NewLimiter(cfg.Analytics.Rate, cfg.Analytics.Burst)
		log.Println("analytics enabled")
	} else {
		log.Println("analytics disabled by configuration")
	}

	router := handler.NewRouter(handler.Deps{
		Assistant:      assistantService,
		Chat:           chatService,
		Consent:        consent.NewService(cfg.Consent.TTL, cfg.Consent.BannerDelay),
		Analytics:      analyticsService,
		Limiter:        limiter,
		GivingLevels:   giving.NewMemoryStore(giving.Seed()),
		Stats:          stats,
		StatsTick:      cfg.Stats.Tick,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	startServer(ctx, cfg.Server, router)

	if analyticsService != nil {
		drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := analyticsService.Close(drainCtx); err != nil {
			log.Printf("warning: analytics drain incomplete: %v", err)
		}
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("foundation backend listening on %s", addr)
	if err := runServer(ctx, srv, serverCfg.ShutdownTimeout); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
