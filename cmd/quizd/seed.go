package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-quiz/internal/dataset"
	"github.com/mind-engage/mindengage-quiz/internal/db"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy the question dataset file into the SQL database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		qs, err := dataset.LoadFile(cfg.QuestionsFile)
		if err != nil {
			return fmt.Errorf("load %s: %w", cfg.QuestionsFile, err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("db open failed: %w", err)
		}
		defer dbh.Close()

		if err := quiz.SeedSQL(ctx, dbh, qs); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Printf("seeded %d questions into %s", len(qs), cfg.DBDriver)
		return nil
	},
}
