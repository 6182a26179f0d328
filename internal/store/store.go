// Package store provides the SQLite-backed entry log and settings table.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fitlog/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when an operation references a nonexistent
// entry id. Deletes treat it as benign and never return it.
var ErrNotFound = errors.New("entry not found")

// Store wraps the embedded database holding the entry log and settings.
// Single calls are linearized by the database; compound read-then-write
// sequences are serialized one level up, in the tracker.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append persists a new entry and returns its assigned id. Ids are
// monotonically assigned; insertion order is the entry's total order.
func (s *Store) Append(e model.Entry) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO entries (date, type, quantity, mood) VALUES (?, ?, ?, ?)`,
		e.Date.Format(time.RFC3339), string(e.Type), quantityArg(e), moodArg(e))
	if err != nil {
		return 0, fmt.Errorf("appending entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading entry id: %w", err)
	}
	return id, nil
}

// Get returns the entry with the given id, or ErrNotFound.
func (s *Store) Get(id int64) (model.Entry, error) {
	row := s.db.QueryRow(`SELECT id, date, type, quantity, mood FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Entry{}, ErrNotFound
	}
	if err != nil {
		return model.Entry{}, fmt.Errorf("reading entry %d: %w", id, err)
	}
	return e, nil
}

// GetAll returns every entry in id order. Callers must not rely on the
// ordering for correctness, only to build their own views.
func (s *Store) GetAll() ([]model.Entry, error) {
	return s.queryEntries(`SELECT id, date, type, quantity, mood FROM entries ORDER BY id`)
}

// GetByType returns every entry of exactly the given type, in id order.
func (s *Store) GetByType(t model.EntryType) ([]model.Entry, error) {
	return s.queryEntries(`SELECT id, date, type, quantity, mood FROM entries WHERE type = ? ORDER BY id`, string(t))
}

// Replace overwrites every field of an existing entry, including the
// date. Returns ErrNotFound when the id does not exist.
func (s *Store) Replace(id int64, e model.Entry) error {
	res, err := s.db.Exec(`UPDATE entries SET date = ?, type = ?, quantity = ?, mood = ? WHERE id = ?`,
		e.Date.Format(time.RFC3339), string(e.Type), quantityArg(e), moodArg(e), id)
	if err != nil {
		return fmt.Errorf("replacing entry %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replacing entry %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes one entry. Deleting a missing id is a no-op.
func (s *Store) DeleteByID(id int64) error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}
	return nil
}

// deleteChunkSize keeps each IN (...) list well under SQLite's host
// parameter limit, so a multi-year backlog delete cannot fail outright.
const deleteChunkSize = 500

// DeleteByIDs removes the given id set. Missing ids are ignored, so the
// call is idempotent and order-independent; entries not in the set keep
// their relative order untouched. Large sets are deleted in chunks;
// deletion by explicit id means a partial failure leaves the remaining
// ids for the next run.
func (s *Store) DeleteByIDs(ids []int64) error {
	for len(ids) > 0 {
		n := len(ids)
		if n > deleteChunkSize {
			n = deleteChunkSize
		}
		chunk := ids[:n]
		ids = ids[n:]

		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(chunk)), ",")
		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}
		if _, err := s.db.Exec(`DELETE FROM entries WHERE id IN (`+placeholders+`)`, args...); err != nil {
			return fmt.Errorf("deleting %d entries: %w", len(chunk), err)
		}
	}
	return nil
}

// ClearAll wipes every entry. Only the explicit "reset app" action uses
// this; maintenance deletes go through DeleteByIDs.
func (s *Store) ClearAll() error {
	if _, err := s.db.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}
	return nil
}

func (s *Store) queryEntries(query string, args ...any) ([]model.Entry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (model.Entry, error) {
	var e model.Entry
	var dateStr, typeStr string
	var quantity sql.NullFloat64
	var mood sql.NullString

	if err := row.Scan(&e.ID, &dateStr, &typeStr, &quantity, &mood); err != nil {
		return model.Entry{}, err
	}

	e.Type = model.EntryType(typeStr)
	if quantity.Valid {
		e.Quantity = quantity.Float64
	}
	if mood.Valid {
		e.Mood = model.Mood(mood.String)
	}
	// A malformed date leaves the zero time; aggregation skips it.
	e.Date, _ = time.Parse(time.RFC3339, dateStr)

	return e, nil
}

func quantityArg(e model.Entry) any {
	if e.Type == model.TypeMood {
		return nil
	}
	return e.Quantity
}

func moodArg(e model.Entry) any {
	if e.Type != model.TypeMood {
		return nil
	}
	return string(e.Mood)
}
