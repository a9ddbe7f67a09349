package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	api "github.com/mind-engage/mindengage-quiz/internal/api/http"
	"github.com/mind-engage/mindengage-quiz/internal/config"
	"github.com/mind-engage/mindengage-quiz/internal/dataset"
	"github.com/mind-engage/mindengage-quiz/internal/db"
	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the question set and serve the quiz API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)

	// The dataset is loaded before the listener opens; a missing or broken
	// dataset stops startup.
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	qs, err := loadQuestions(ctx, cfg)
	cancel()
	if err != nil {
		return err
	}
	store := quiz.NewMemoryStore(qs)

	r := api.NewRouter(store, grading.NewScorer(), api.RouterOptions{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		AccessLog:      true,
	})

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (questions=%d, source=%s)", cfg.HTTPAddr, len(qs), cfg.QuestionsSource)
		errc <- s.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sigCtx.Done():
	}

	log.Printf("shutting down")
	shCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return s.Shutdown(shCtx)
}

func loadQuestions(ctx context.Context, cfg config.Config) ([]quiz.Question, error) {
	switch cfg.QuestionsSource {
	case config.SourceFile:
		qs, err := dataset.LoadFile(cfg.QuestionsFile)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", cfg.QuestionsFile, err)
		}
		return qs, nil
	case config.SourceSQL:
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("db open failed: %w", err)
		}
		defer dbh.Close()
		qs, err := quiz.LoadSQL(ctx, dbh)
		if err != nil {
			return nil, fmt.Errorf("load questions from %s: %w", cfg.DBDriver, err)
		}
		if len(qs) == 0 {
			return nil, fmt.Errorf("no questions in %s database; run quizd seed first", cfg.DBDriver)
		}
		return qs, nil
	default:
		return nil, fmt.Errorf("unsupported questions source: %s", cfg.QuestionsSource)
	}
}
