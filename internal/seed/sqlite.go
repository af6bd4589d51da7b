package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	_ "modernc.org/sqlite"
)

// loadSQLite reads columns and cards ordered by position.
// The database is opened read-only and never modified.
func loadSQLite(ctx context.Context, dbPath string) ([]models.Column, error) {
	// sql.Open is lazy and would create an empty file for a bad path
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open seed database: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open seed database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing seed database", "path", dbPath, "error", err)
		}
	}()

	cols, index, err := readColumns(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := readCards(ctx, db, cols, index); err != nil {
		return nil, err
	}
	return cols, nil
}

func readColumns(ctx context.Context, db *sql.DB) ([]models.Column, map[string]int, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, title FROM columns ORDER BY position, rowid`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	cols := []models.Column{}
	index := make(map[string]int)
	for rows.Next() {
		var col models.Column
		if err := rows.Scan(&col.ID, &col.Title); err != nil {
			return nil, nil, fmt.Errorf("failed to scan column: %w", err)
		}
		index[col.ID] = len(cols)
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating columns: %w", err)
	}
	return cols, index, nil
}

func readCards(ctx context.Context, db *sql.DB, cols []models.Column, index map[string]int) error {
	rows, err := db.QueryContext(ctx, `
		SELECT id, column_id, title, COALESCE(description, ''), COALESCE(labels, '')
		FROM cards
		ORDER BY column_id, position, rowid
	`)
	if err != nil {
		return fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			card     models.Card
			columnID string
			labels   string
		)
		if err := rows.Scan(&card.ID, &columnID, &card.Title, &card.Description, &labels); err != nil {
			return fmt.Errorf("failed to scan card: %w", err)
		}
		i, ok := index[columnID]
		if !ok {
			slog.Warn("seed card references unknown column", "card", card.ID, "column", columnID)
			continue
		}
		card.Labels = board.ParseLabels(labels)
		cols[i].Tasks = append(cols[i].Tasks, card)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating cards: %w", err)
	}
	return nil
}
