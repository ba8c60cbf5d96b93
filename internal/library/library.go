// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library keeps BibTeX entries the user chose to save in a local
// SQLite database. The fetch client never reads from it.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/libads/internal/bibcode"
	"github.com/pdiddy/libads/pkg/types"
)

const (
	defaultDir  = "library"
	defaultFile = "libads.db"
)

// ErrNotFound is returned when the library holds no entry for a bibcode.
var ErrNotFound = errors.New("entry not found in library")

// Entry is a saved BibTeX entry.
type Entry struct {
	Bibcode   bibcode.BibCode `json:"bibcode" yaml:"bibcode"`
	Text      string          `json:"entry" yaml:"entry"`
	FetchedAt time.Time       `json:"fetched_at" yaml:"fetched_at"`
}

// Library manages the entry database.
type Library struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens or creates the database at cfg.Dir/cfg.File and ensures the
// schema exists.
func Open(cfg types.LibraryConfig) (*Library, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	file := cfg.File
	if file == "" {
		file = defaultFile
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	path := filepath.Join(dir, file)
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	l := &Library{db: db, path: path, now: time.Now}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Path returns the database file path.
func (l *Library) Path() string { return l.path }

// Close releases the database connection.
func (l *Library) Close() error {
	return l.db.Close()
}

func (l *Library) createSchema() error {
	_, err := l.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		bibcode TEXT PRIMARY KEY,
		entry TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`)
	return err
}

// Save stores entry under code, replacing any previous entry.
func (l *Library) Save(ctx context.Context, code bibcode.BibCode, entry string) error {
	if code.IsZero() {
		return fmt.Errorf("saving entry: %w", bibcode.ErrInvalid)
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO entries (bibcode, entry, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(bibcode) DO UPDATE SET entry=excluded.entry, fetched_at=excluded.fetched_at`,
		code.String(), entry, l.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", code, err)
	}
	return nil
}

// Get returns the entry stored under code.
func (l *Library) Get(ctx context.Context, code bibcode.BibCode) (Entry, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT bibcode, entry, fetched_at FROM entries WHERE bibcode = ?`, code.String())
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%s: %w", code, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("reading %s: %w", code, err)
	}
	return e, nil
}

// List returns all entries ordered by bibcode.
func (l *Library) List(ctx context.Context) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT bibcode, entry, fetched_at FROM entries ORDER BY bibcode`)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Remove deletes the entry stored under code.
func (l *Library) Remove(ctx context.Context, code bibcode.BibCode) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM entries WHERE bibcode = ?`, code.String())
	if err != nil {
		return fmt.Errorf("removing %s: %w", code, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("removing %s: %w", code, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", code, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var code, text, fetched string
	if err := s.Scan(&code, &text, &fetched); err != nil {
		return Entry{}, err
	}
	bc, err := bibcode.New(code)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Bibcode: bc, Text: text}
	if t, err := time.Parse(time.RFC3339Nano, fetched); err == nil {
		e.FetchedAt = t
	}
	return e, nil
}
