// Package history journals catalogue mutations in a SQLite sidecar.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kmallory/fruitdata/internal/item"
)

// Ops recorded in the journal.
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

// Event is one applied mutation.
type Event struct {
	ID         string    `json:"id"`
	Op         string    `json:"op"`
	Name       string    `json:"name"`
	Length     float64   `json:"length,omitempty"`
	Width      float64   `json:"width,omitempty"`
	Height     float64   `json:"height,omitempty"`
	Removed    int       `json:"removed,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// DB wraps a SQLite journal connection.
type DB struct {
	db *sql.DB
}

// Open opens or creates the journal database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			op TEXT NOT NULL,
			name TEXT NOT NULL,
			length REAL,
			width REAL,
			height REAL,
			removed INTEGER,
			recorded_at TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// RecordAdd journals a successful add of it.
func (d *DB) RecordAdd(it item.Item) error {
	_, err := d.db.Exec(
		`INSERT INTO events (id, op, name, length, width, height, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), OpAdd, it.Name, it.Length, it.Width, it.Height,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording add event: %w", err)
	}
	return nil
}

// RecordRemove journals a successful remove of removed entries matching name.
func (d *DB) RecordRemove(name string, removed int) error {
	_, err := d.db.Exec(
		`INSERT INTO events (id, op, name, removed, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), OpRemove, name, removed,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording remove event: %w", err)
	}
	return nil
}

// Recent returns the newest events first, at most limit (0 = all).
func (d *DB) Recent(limit int) ([]Event, error) {
	query := `SELECT id, op, name, length, width, height, removed, recorded_at
		FROM events ORDER BY rowid DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e       Event
			l, w, h sql.NullFloat64
			removed sql.NullInt64
			at      string
		)
		if err := rows.Scan(&e.ID, &e.Op, &e.Name, &l, &w, &h, &removed, &at); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		e.Length = l.Float64
		e.Width = w.Float64
		e.Height = h.Float64
		e.Removed = int(removed.Int64)
		e.RecordedAt, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("parsing event timestamp: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}

	return events, nil
}
