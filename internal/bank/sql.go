package bank

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// SQLSource reads bank lines from the questions table, in import order.
type SQLSource struct {
	DB *sql.DB
}

func (s SQLSource) Load(ctx context.Context) (string, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT line FROM questions ORDER BY position`)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var b strings.Builder
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Import replaces the stored bank with the lines of text. Blank lines are
// kept out of the table; everything else is stored verbatim, malformed or
// not, so the DB round-trips exactly what a file source would serve.
func Import(ctx context.Context, db *sql.DB, text string) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return 0, err
	}
	now := time.Now().Unix()
	n := 0
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (line, imported_at) VALUES ($1, $2)`, line, now); err != nil {
			return 0, err
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}
