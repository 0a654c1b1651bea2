package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tidydrive/namerule/pkg/models"
	"github.com/tidydrive/namerule/pkg/schema"
)

// Rule is a named naming convention persisted in the store.
type Rule struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Schema      models.Schema `json:"schema"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Store persists naming rules in a sqlite database under dataDir.
type Store struct {
	db      *sql.DB
	dataDir string
}

// Open creates the data directory if needed and opens the rule database.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "rules.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, dataDir: dataDir}
	if err := s.init(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	return s, nil
}

// init creates the database schema
func (s *Store) init() error {
	ddl := `
	CREATE TABLE IF NOT EXISTS rules (
		name TEXT PRIMARY KEY,
		description TEXT,
		schema TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_rules_updated_at ON rules(updated_at);
	`

	_, err := s.db.Exec(ddl)
	return err
}

// Save validates and upserts a rule. The creation timestamp of an existing
// rule is preserved; the update timestamp is always refreshed.
func (s *Store) Save(r *Rule) error {
	if r.Name == "" {
		return fmt.Errorf("rule name cannot be empty")
	}
	if err := schema.ValidateSchema(&r.Schema); err != nil {
		return fmt.Errorf("validate rule schema: %w", err)
	}

	data, err := schema.EncodeJSON(&r.Schema)
	if err != nil {
		return fmt.Errorf("marshal rule schema: %w", err)
	}

	now := time.Now()
	createdAt := now
	var existing time.Time
	err = s.db.QueryRow("SELECT created_at FROM rules WHERE name = ?", r.Name).Scan(&existing)
	if err == nil {
		createdAt = existing
	} else if err != sql.ErrNoRows {
		return err
	}

	query := `
	INSERT OR REPLACE INTO rules (name, description, schema, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query, r.Name, r.Description, string(data), createdAt, now); err != nil {
		return err
	}

	r.CreatedAt = createdAt
	r.UpdatedAt = now
	return nil
}

// Get retrieves a rule by name.
func (s *Store) Get(name string) (*Rule, error) {
	query := `
	SELECT name, description, schema, created_at, updated_at
	FROM rules WHERE name = ?
	`

	r := &Rule{}
	var raw string
	err := s.db.QueryRow(query, name).Scan(
		&r.Name, &r.Description, &raw, &r.CreatedAt, &r.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("rule not found: %s", name)
	}
	if err != nil {
		return nil, err
	}

	parsed, err := schema.DecodeJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("stored schema for %s: %w", name, err)
	}
	r.Schema = *parsed

	return r, nil
}

// List returns all rules, most recently updated first.
func (s *Store) List() ([]*Rule, error) {
	query := `
	SELECT name, description, schema, created_at, updated_at
	FROM rules ORDER BY updated_at DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*Rule
	for rows.Next() {
		r := &Rule{}
		var raw string
		if err := rows.Scan(&r.Name, &r.Description, &raw, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		parsed, err := schema.DecodeJSON([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("stored schema for %s: %w", r.Name, err)
		}
		r.Schema = *parsed
		rules = append(rules, r)
	}

	return rules, rows.Err()
}

// Delete removes a rule by name.
func (s *Store) Delete(name string) error {
	result, err := s.db.Exec("DELETE FROM rules WHERE name = ?", name)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("rule not found: %s", name)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
