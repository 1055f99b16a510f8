package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrListNotFound is returned when no list has the requested name.
var ErrListNotFound = errors.New("catalog: list not found")

// ListInfo summarizes one stored list.
type ListInfo struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// Catalog stores named, ordered word lists.
type Catalog struct{ db *sql.DB }

func New(db *sql.DB) *Catalog { return &Catalog{db: db} }

// Put replaces the list called name with words, keeping their order.
func (c *Catalog) Put(ctx context.Context, name string, words []string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM list_words WHERE list_name=?`, name); err != nil {
		return fmt.Errorf("clear %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM word_lists WHERE name=?`, name); err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO word_lists(name, created_at) VALUES (?, ?)`,
		name, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert %s: %w", name, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO list_words(list_name, position, word) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, w := range words {
		if _, err := stmt.ExecContext(ctx, name, i, w); err != nil {
			return fmt.Errorf("insert %s[%d]: %w", name, i, err)
		}
	}
	return tx.Commit()
}

// Words returns the words of a list in stored order.
func (c *Catalog) Words(ctx context.Context, name string) ([]string, error) {
	var exists int
	err := c.db.QueryRowContext(ctx, `SELECT 1 FROM word_lists WHERE name=?`, name).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT word FROM list_words WHERE list_name=? ORDER BY position ASC`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Lists returns every stored list with its word count, sorted by name.
func (c *Catalog) Lists(ctx context.Context) ([]ListInfo, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT l.name, COUNT(w.word)
        FROM word_lists l
        LEFT JOIN list_words w ON w.list_name = l.name
        GROUP BY l.name
        ORDER BY l.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ListInfo{}
	for rows.Next() {
		var li ListInfo
		if err := rows.Scan(&li.Name, &li.Words); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}
