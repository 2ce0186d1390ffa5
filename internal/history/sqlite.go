package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kmj8843/mdrowser/pkg/api"
)

type sqliteStore struct{ db *sql.DB }

// OpenSQLite opens (creating if needed) the visit log at path using the
// modernc.org/sqlite driver and ensures the schema exists.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// set WAL mode
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS visits (
  url TEXT PRIMARY KEY,
  domain TEXT NOT NULL,
  title TEXT NOT NULL DEFAULT '',
  lines INTEGER NOT NULL DEFAULT 0,
  hash TEXT NOT NULL DEFAULT '',
  count INTEGER NOT NULL DEFAULT 1,
  fetched_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visits_fetched_at ON visits(fetched_at DESC);
CREATE INDEX IF NOT EXISTS idx_visits_domain ON visits(domain);
`)
	return err
}

func (s *sqliteStore) Record(ctx context.Context, v api.Visit) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO visits(url, domain, title, lines, hash, count, fetched_at)
VALUES(?,?,?,?,?,1,?)
ON CONFLICT(url) DO UPDATE SET
  domain=excluded.domain,
  title=excluded.title,
  lines=excluded.lines,
  hash=excluded.hash,
  count=visits.count+1,
  fetched_at=excluded.fetched_at`,
		v.URL, v.Domain, v.Title, v.Lines, v.Hash, v.FetchedAt.UTC())
	return err
}

func (s *sqliteStore) List(ctx context.Context, limit int) ([]api.Visit, error) {
	q := `SELECT url, domain, title, lines, hash, count, fetched_at FROM visits ORDER BY fetched_at DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryVisits(ctx, q, args...)
}

func (s *sqliteStore) Search(ctx context.Context, q string, limit int) ([]api.Visit, error) {
	pat := "%" + q + "%"
	sqlq := `SELECT url, domain, title, lines, hash, count, fetched_at FROM visits
WHERE url LIKE ? OR title LIKE ?
ORDER BY fetched_at DESC`
	args := []any{pat, pat}
	if limit > 0 {
		sqlq += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryVisits(ctx, sqlq, args...)
}

func (s *sqliteStore) Get(ctx context.Context, url string) (api.Visit, error) {
	row := s.db.QueryRowContext(ctx, `SELECT url, domain, title, lines, hash, count, fetched_at FROM visits WHERE url=?`, url)
	var v api.Visit
	if err := row.Scan(&v.URL, &v.Domain, &v.Title, &v.Lines, &v.Hash, &v.Count, &v.FetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return api.Visit{}, ErrNotFound
		}
		return api.Visit{}, err
	}
	return v, nil
}

func (s *sqliteStore) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits`)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }

func (s *sqliteStore) queryVisits(ctx context.Context, q string, args ...any) ([]api.Visit, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []api.Visit
	for rows.Next() {
		var v api.Visit
		if err := rows.Scan(&v.URL, &v.Domain, &v.Title, &v.Lines, &v.Hash, &v.Count, &v.FetchedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
