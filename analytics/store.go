// Package analytics provides a lightweight page-view counter. It stores
// one row per (slug, locale, day) in SQLite; no per-visitor history is
// kept, only an anonymous cookie to make the numbers roughly unique.
package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for the view counter.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at path, ensuring
// the data directory exists.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;`); err != nil {
		return nil, fmt.Errorf("configure analytics db: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS page_views (
    slug TEXT NOT NULL,
    locale TEXT NOT NULL,
    day TEXT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (slug, locale, day)
);

CREATE INDEX IF NOT EXISTS idx_page_views_day ON page_views(day);
`)
	return err
}

// RecordView increments the view counter for a post on the given day.
func (s *Store) RecordView(slug, locale string, day time.Time) error {
	_, err := s.db.Exec(`
INSERT INTO page_views (slug, locale, day, count) VALUES (?, ?, ?, 1)
ON CONFLICT(slug, locale, day) DO UPDATE SET count = count + 1`,
		slug, locale, day.UTC().Format(time.DateOnly))
	return err
}

// PostViews is an aggregated view count for one post.
type PostViews struct {
	Slug   string `json:"slug"`
	Locale string `json:"locale"`
	Views  int64  `json:"views"`
}

// TopPosts returns the most viewed posts for a locale since the given
// day, busiest first.
func (s *Store) TopPosts(locale string, since time.Time, limit int) ([]PostViews, error) {
	rows, err := s.db.Query(`
SELECT slug, locale, SUM(count) AS views FROM page_views
WHERE locale = ? AND day >= ?
GROUP BY slug, locale
ORDER BY views DESC, slug ASC
LIMIT ?`,
		locale, since.UTC().Format(time.DateOnly), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PostViews
	for rows.Next() {
		var pv PostViews
		if err := rows.Scan(&pv.Slug, &pv.Locale, &pv.Views); err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, rows.Err()
}

// TotalViews returns the all-time view count for a single post.
func (s *Store) TotalViews(slug, locale string) (int64, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(`SELECT SUM(count) FROM page_views WHERE slug = ? AND locale = ?`,
		slug, locale).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}

// Prune deletes view rows older than the retention window.
func (s *Store) Prune(olderThan time.Time) error {
	_, err := s.db.Exec(`DELETE FROM page_views WHERE day < ?`,
		olderThan.UTC().Format(time.DateOnly))
	return err
}
