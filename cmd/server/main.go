package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/beaverbray/office-football-pool/internal/api"
	"github.com/beaverbray/office-football-pool/internal/compare"
	"github.com/beaverbray/office-football-pool/internal/config"
	"github.com/beaverbray/office-football-pool/internal/llm"
	"github.com/beaverbray/office-football-pool/internal/matching"
	"github.com/beaverbray/office-football-pool/internal/odds"
	"github.com/beaverbray/office-football-pool/internal/picksheet"
	"github.com/beaverbray/office-football-pool/internal/pipeline"
	"github.com/beaverbray/office-football-pool/internal/resolve"
	"github.com/beaverbray/office-football-pool/internal/store"
	"github.com/beaverbray/office-football-pool/internal/teams"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Core services
	directory := teams.NewDirectory()
	resolver := resolve.NewResolver(directory, logger)
	matcher := matching.NewGameMatcher(resolver, logger)
	comparer := compare.NewEngine(directory, logger)

	// Optional collaborators, wired only when their keys are configured
	var parser pipeline.PicksheetParser
	if cfg.LLMAPIKey != "" {
		parser = picksheet.NewParser(llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel), logger)
	} else {
		logger.Warn("LLM API key not set; picksheet text parsing disabled")
	}

	var oddsClient pipeline.OddsProvider
	if cfg.OddsAPIKey != "" {
		oddsClient = odds.NewClient(cfg.OddsAPIKey, logger)
	} else {
		logger.Warn("odds API key not set; market odds retrieval disabled")
	}

	var st *store.Store
	var saver pipeline.RunSaver
	if cfg.DatabaseDSN != "" {
		st, err = store.Open(cfg.DatabaseDSN)
		if err != nil {
			logger.WithError(err).Fatal("failed to open run store")
		}
		defer st.Close()
		saver = st
	} else {
		logger.Info("no database DSN; run persistence disabled")
	}

	orchestrator := pipeline.NewOrchestrator(parser, oddsClient, matcher, comparer, saver, logger)
	handler := api.NewHandler(orchestrator, resolver, matcher, comparer, oddsClient, st, logger)
	handler.DefaultThreshold = cfg.MatchThreshold

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Office Football Pool API is Running"))
	})
	handler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.WithField("addr", addr).Info("starting server")
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.WithError(err).Fatal("server failed")
	}
}
