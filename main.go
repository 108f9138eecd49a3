package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MuraliDhar-731/Hangman/internal/config"
	"github.com/MuraliDhar-731/Hangman/internal/httpserver"
	"github.com/MuraliDhar-731/Hangman/internal/metrics"
	"github.com/MuraliDhar-731/Hangman/internal/store"
	"github.com/MuraliDhar-731/Hangman/internal/words"
)

const sweepInterval = 10 * time.Minute

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	src, _, closeSrc := words.Open(cfg.WordsDB, cfg.WordsFile)
	defer closeSrc()
	sel := words.NewSelector(src, nil, words.WithFallbackHook(func(d words.Difficulty, err error) {
		m.WordFallbacks.WithLabelValues(string(d)).Inc()
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore(time.Now)
	go store.RunSweeper(ctx, mem, sweepInterval, cfg.SessionTTL, func(n int) {
		m.Sessions.Set(float64(mem.Len()))
		log.Debug().Int("dropped", n).Msg("idle sessions swept")
	})

	srv := httpserver.New(httpserver.Deps{
		Config:   cfg,
		Store:    mem,
		Selector: sel,
		Metrics:  m,
		Gatherer: reg,
	})
	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting hangman server")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
