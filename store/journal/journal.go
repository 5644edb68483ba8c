package journal

import (
	"context"
	"time"

	"anchor/core"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS journal (
	id BIGSERIAL PRIMARY KEY,
	trace_id VARCHAR(36) NOT NULL UNIQUE,
	type VARCHAR(16) NOT NULL,
	user_id VARCHAR(64) NOT NULL,
	asset_id VARCHAR(64) NOT NULL DEFAULT '',
	amount VARCHAR(80) NOT NULL,
	counterparty_id VARCHAR(64) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_journal_user ON journal (user_id, id DESC);
`

type journalStore struct {
	db *sqlx.DB
}

// Connect open the journal database
func Connect(dsn string) (*sqlx.DB, error) {
	return sqlx.Connect("postgres", dsn)
}

// New new postgres journal store
func New(db *sqlx.DB) core.IJournalStore {
	return &journalStore{db: db}
}

// Migrate create the journal table
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *journalStore) Record(ctx context.Context, entry *core.JournalEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO journal (trace_id, type, user_id, asset_id, amount, counterparty_id, created_at)
		VALUES (:trace_id, :type, :user_id, :asset_id, :amount, :counterparty_id, :created_at)
		ON CONFLICT (trace_id) DO NOTHING`, entry)
	return err
}

func (s *journalStore) ListByUser(ctx context.Context, userID string, limit int) ([]*core.JournalEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	var entries []*core.JournalEntry
	if err := s.db.SelectContext(ctx, &entries, `
		SELECT * FROM journal WHERE user_id = $1 ORDER BY id DESC LIMIT $2`, userID, limit); err != nil {
		return nil, err
	}

	return entries, nil
}
