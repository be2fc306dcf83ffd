// Package zombiezen stores POS labels in a SQLite database.
package zombiezen

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/toktab/storage"
	"github.com/revelaction/toktab/token"
)

// LabelStore persists surface→POS labels in a labels table.
type LabelStore struct {
	pool *sqlitex.Pool
}

var _ storage.LabelRepository = (*LabelStore)(nil)

// NewLabelStore opens (or creates) the database at dbPath with WAL mode
// enabled and ensures the schema exists.
func NewLabelStore(dbPath string) (*LabelStore, error) {
	poolSize := runtime.NumCPU()
	initString := fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: poolSize,
		PrepareConn: func(conn *sqlite.Conn) error {
			return createSchema(conn)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zombiezen pool at %s: %w", dbPath, err)
	}

	return &LabelStore{pool: pool}, nil
}

func (s *LabelStore) Close() error {
	return s.pool.Close()
}

func (s *LabelStore) ReadAll() (map[string]token.POS, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	labels := map[string]token.POS{}
	err = sqlitex.Execute(conn, "SELECT surface, pos FROM labels ORDER BY surface", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			p, _ := token.ParsePOS(stmt.ColumnText(1))
			labels[stmt.ColumnText(0)] = p
			return nil
		},
	})

	if err != nil {
		return nil, err
	}

	return labels, nil
}

// Write upserts a single label.
func (s *LabelStore) Write(surface string, p token.POS) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	return sqlitex.Execute(conn, `
		INSERT INTO labels (surface, pos, updated)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(surface) DO UPDATE SET
			pos = excluded.pos,
			updated = excluded.updated
	`, &sqlitex.ExecOptions{
		Args: []interface{}{surface, string(p)},
	})
}

func (s *LabelStore) WriteAll(labels map[string]token.POS) error {
	surfaces := make([]string, 0, len(labels))
	for surface := range labels {
		surfaces = append(surfaces, surface)
	}
	sort.Strings(surfaces)

	for _, surface := range surfaces {
		if err := s.Write(surface, labels[surface]); err != nil {
			return err
		}
	}

	return nil
}
