/*
Package sqlite provides a SQLite-backed implementation of store.Store.

KEY TABLES:

	profile:   the single preparer profile (id is always 1)
	scenarios: saved scenarios; client, preparer and calculations are kept
	           as one JSON document per row

WAL MODE:

	File databases are opened with WAL journaling so the HTTP server can
	serve reads while a save is in progress. ":memory:" databases are held on
	a single connection, since every new connection would see an empty
	database.

MIGRATION:

	Schema is auto-migrated on New().
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/store"
)

// Store implements store.Store using SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ store.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	dsn := dbPath + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
	if dbPath == ":memory:" {
		dsn = dbPath
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		name TEXT NOT NULL,
		cea_number TEXT NOT NULL,
		mobile TEXT NOT NULL,
		email TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		document TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scenarios_name ON scenarios(name, id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// GetProfile returns the saved preparer profile.
func (s *Store) GetProfile(ctx context.Context) (domain.Preparer, error) {
	var p domain.Preparer
	err := s.db.QueryRowContext(ctx,
		`SELECT name, cea_number, mobile, email FROM profile WHERE id = 1`,
	).Scan(&p.Name, &p.CEANumber, &p.Mobile, &p.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Preparer{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Preparer{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// SaveProfile replaces the preparer profile.
func (s *Store) SaveProfile(ctx context.Context, p domain.Preparer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profile (id, name, cea_number, mobile, email, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			cea_number = excluded.cea_number,
			mobile = excluded.mobile,
			email = excluded.email,
			updated_at = excluded.updated_at`,
		p.Name, p.CEANumber, p.Mobile, p.Email, s.now().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// document is the JSON payload of a scenario row.
type document struct {
	Client       domain.Client               `json:"client"`
	Preparer     *domain.Preparer            `json:"preparer,omitempty"`
	Calculations []domain.CalculationRequest `json:"calculations"`
}

// SaveScenario inserts or replaces a scenario.
func (s *Store) SaveScenario(ctx context.Context, sc *domain.Scenario) (*domain.Scenario, error) {
	if err := store.CheckScenario(sc); err != nil {
		return nil, err
	}

	id := sc.ID
	if id == "" {
		id = uuid.NewString()
	}
	doc, err := json.Marshal(document{Client: sc.Client, Preparer: sc.Preparer, Calculations: sc.Calculations})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scenario: %w", err)
	}
	now := s.now().Format(time.RFC3339Nano)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scenarios (id, name, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		id, sc.Name, string(doc), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save scenario: %w", err)
	}
	return s.GetScenario(ctx, id)
}

// GetScenario loads one scenario by ID.
func (s *Store) GetScenario(ctx context.Context, id string) (*domain.Scenario, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, document, created_at, updated_at FROM scenarios WHERE id = ?`, id)
	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// ListScenarios returns all scenarios ordered by name.
func (s *Store) ListScenarios(ctx context.Context) ([]*domain.Scenario, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, document, created_at, updated_at FROM scenarios ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	out := []*domain.Scenario{}
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// DeleteScenario removes a scenario.
func (s *Store) DeleteScenario(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(row scanner) (*domain.Scenario, error) {
	var (
		sc                   domain.Scenario
		doc                  string
		createdAt, updatedAt string
	)
	if err := row.Scan(&sc.ID, &sc.Name, &doc, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var d document
	if err := json.Unmarshal([]byte(doc), &d); err != nil {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", sc.ID, err)
	}
	sc.Client = d.Client
	sc.Preparer = d.Preparer
	sc.Calculations = d.Calculations

	var err error
	if sc.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if sc.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return &sc, nil
}
