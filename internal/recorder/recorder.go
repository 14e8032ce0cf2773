// Package recorder persists observed input events to SQLite for later
// inspection.
package recorder

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"hookwire/event"
)

// Schema for the event log.
const schema = `
CREATE TABLE IF NOT EXISTS events (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   INTEGER NOT NULL,
    kind        INTEGER NOT NULL,
    mask        INTEGER NOT NULL,
    synthetic   INTEGER NOT NULL,
    reserved    INTEGER NOT NULL,
    key_code    INTEGER,
    raw_code    INTEGER,
    key_char    INTEGER,
    button      INTEGER,
    clicks      INTEGER,
    x           INTEGER,
    y           INTEGER,
    rotation    INTEGER,
    direction   INTEGER
);

CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp);
CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind, timestamp);
`

// Row is one persisted event.
type Row struct {
	ID        int64
	Timestamp uint64
	Kind      event.Kind
	Mask      event.Mask
	Synthetic bool
	Reserved  bool
	KeyCode   uint16
	RawCode   uint16
	KeyChar   uint16
	Button    uint16
	Clicks    uint16
	X         int16
	Y         int16
	Rotation  int16
	Direction uint8
}

// Recorder is the SQLite-backed event log.
type Recorder struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Recorder, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Recorder{db: db}, nil
}

// Close closes the database connection.
func (r *Recorder) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Record persists one event and returns its row ID. Control events are
// recorded too; their payload columns stay zero.
func (r *Recorder) Record(ev *event.Event) (int64, error) {
	row := flatten(ev)
	result, err := r.db.Exec(`
		INSERT INTO events (timestamp, kind, mask, synthetic, reserved,
		                    key_code, raw_code, key_char,
		                    button, clicks, x, y, rotation, direction)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Timestamp, uint8(row.Kind), uint16(row.Mask),
		boolInt(row.Synthetic), boolInt(row.Reserved),
		row.KeyCode, row.RawCode, row.KeyChar,
		row.Button, row.Clicks, row.X, row.Y, row.Rotation, row.Direction,
	)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}
	return id, nil
}

const selectCols = `id, timestamp, kind, mask, synthetic, reserved,
	key_code, raw_code, key_char, button, clicks, x, y, rotation, direction`

// Get retrieves one persisted event by row ID, or nil when absent.
func (r *Recorder) Get(id int64) (*Row, error) {
	row, err := scanRow(r.db.QueryRow(
		`SELECT `+selectCols+` FROM events WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return row, nil
}

// Range returns events with timestamps in [start, end], oldest first.
func (r *Recorder) Range(start, end uint64) ([]Row, error) {
	rows, err := r.db.Query(`
		SELECT `+selectCols+` FROM events
		WHERE timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp ASC, id ASC`, start, end)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ByKind returns the most recent events of one kind, newest first.
func (r *Recorder) ByKind(kind event.Kind, limit int) ([]Row, error) {
	rows, err := r.db.Query(`
		SELECT `+selectCols+` FROM events
		WHERE kind = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, uint8(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("query events by kind: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Count returns the number of persisted events.
func (r *Recorder) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// Prune deletes events older than cutoff and reports how many went.
func (r *Recorder) Prune(cutoff uint64) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM events WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune events: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func flatten(ev *event.Event) Row {
	row := Row{
		Timestamp: ev.Metadata.Time,
		Kind:      ev.Kind,
		Mask:      ev.Metadata.Mask,
		Synthetic: ev.IsSynthetic(),
		Reserved:  ev.IsReserved(),
	}
	switch ev.Class() {
	case event.ClassKeyboard:
		row.KeyCode = uint16(ev.Keyboard.Key)
		row.RawCode = ev.Keyboard.Raw
		row.KeyChar = ev.Keyboard.Char
	case event.ClassMouse:
		row.Button = uint16(ev.Mouse.Button)
		row.Clicks = ev.Mouse.Clicks
		row.X = ev.Mouse.X
		row.Y = ev.Mouse.Y
	case event.ClassWheel:
		row.Clicks = ev.Wheel.Clicks
		row.X = ev.Wheel.X
		row.Y = ev.Wheel.Y
		row.Rotation = ev.Wheel.Rotation
		row.Direction = uint8(ev.Wheel.Direction)
	}
	return row
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (*Row, error) {
	var row Row
	var kind uint8
	var mask uint16
	var synthetic, reserved int
	err := s.Scan(&row.ID, &row.Timestamp, &kind, &mask, &synthetic, &reserved,
		&row.KeyCode, &row.RawCode, &row.KeyChar,
		&row.Button, &row.Clicks, &row.X, &row.Y, &row.Rotation, &row.Direction)
	if err != nil {
		return nil, err
	}
	row.Kind = event.Kind(kind)
	row.Mask = event.Mask(mask)
	row.Synthetic = synthetic != 0
	row.Reserved = reserved != 0
	return &row, nil
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	var out []Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
