package advisory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS advisories (
	key        TEXT PRIMARY KEY,
	entity_id  TEXT NOT NULL,
	reason     TEXT NOT NULL,
	refs       TEXT NOT NULL DEFAULT '[]',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_advisories_entity ON advisories(entity_id);

CREATE TABLE IF NOT EXISTS entity_refs (
	id        TEXT PRIMARY KEY,
	entity_id TEXT NOT NULL,
	kind      TEXT NOT NULL,
	name      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entity_refs_entity ON entity_refs(entity_id);
`

// SQLiteStore implements [Store] and [ReferenceStore] on a SQLite
// database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates, if needed) the advisory database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("advisory db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("advisory schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Save inserts or refreshes an advisory.
func (s *SQLiteStore) Save(ctx context.Context, a *Advisory) error {
	refs, err := json.Marshal(a.Refs)
	if err != nil {
		return fmt.Errorf("marshaling refs: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO advisories (key, entity_id, reason, refs, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET refs = excluded.refs`,
		a.Key, a.EntityID, a.Reason, string(refs), a.CreatedAt.UTC(),
	)
	return err
}

// Delete removes an advisory by key. Deleting an absent key is not an
// error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM advisories WHERE key = ?`, key)
	return err
}

// ListByEntity returns the advisories flagged for one entity.
func (s *SQLiteStore) ListByEntity(ctx context.Context, entityID string) ([]*Advisory, error) {
	return s.query(ctx, `SELECT key, entity_id, reason, refs, created_at
		FROM advisories WHERE entity_id = ? ORDER BY key`, entityID)
}

// List returns all flagged advisories.
func (s *SQLiteStore) List(ctx context.Context) ([]*Advisory, error) {
	return s.query(ctx, `SELECT key, entity_id, reason, refs, created_at
		FROM advisories ORDER BY key`)
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...any) ([]*Advisory, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advs []*Advisory
	for rows.Next() {
		var (
			a       Advisory
			refs    string
			created time.Time
		)
		if err := rows.Scan(&a.Key, &a.EntityID, &a.Reason, &refs, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(refs), &a.Refs); err != nil {
			return nil, fmt.Errorf("unmarshaling refs: %w", err)
		}
		a.CreatedAt = created
		a.derive()
		advs = append(advs, &a)
	}
	return advs, rows.Err()
}

// References returns the automations and scenes recorded as reading
// entityID.
func (s *SQLiteStore) References(ctx context.Context, entityID string) ([]Reference, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, entity_id, kind, name
		FROM entity_refs WHERE entity_id = ? ORDER BY name`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []Reference
	for rows.Next() {
		var r Reference
		if err := rows.Scan(&r.ID, &r.EntityID, &r.Kind, &r.Name); err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

// AddReference records that an automation or scene reads entityID.
func (s *SQLiteStore) AddReference(ctx context.Context, r Reference) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entity_refs (id, entity_id, kind, name)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET entity_id = excluded.entity_id,
			kind = excluded.kind, name = excluded.name`,
		r.ID, r.EntityID, r.Kind, r.Name,
	)
	return r.ID, err
}

// RemoveReference deletes a recorded reference.
func (s *SQLiteStore) RemoveReference(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM entity_refs WHERE id = ?`, id)
	return err
}
