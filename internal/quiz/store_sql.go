package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// LoadSQL reads the question set from the questions table, in position
// order.
func LoadSQL(ctx context.Context, db *sql.DB) ([]Question, error) {
	rows, err := db.QueryContext(ctx, `SELECT body_json FROM questions ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		q, err := ParseQuestion(json.RawMessage(body))
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SeedSQL replaces the content of the questions table with qs.
func SeedSQL(ctx context.Context, db *sql.DB, qs []Question) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return err
	}
	for i, q := range qs {
		body, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (id, position, body_json) VALUES ($1,$2,$3)`,
			q.ID, i, string(body)); err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
	}
	return tx.Commit()
}
