package sqlite

import (
	"context"
	"database/sql"
)

// kvTx batches writes so a Set call is all-or-nothing
type kvTx struct {
	tx *sql.Tx
}

func (s *Store) beginTx(ctx context.Context) (*kvTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &kvTx{tx: tx}, nil
}

// put inserts or replaces a value
func (t *kvTx) put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := t.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, strftime('%s', 'now'))
	`, key, value)
	return err
}

func (t *kvTx) commit() error {
	return t.tx.Commit()
}

func (t *kvTx) rollback() error {
	return t.tx.Rollback()
}
