// Package store implements the flat-file persistence surfaces shared
// by the sessions: the identity roster, the labeled sample store and
// the per-day attendance ledger.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ErrMalformedRoster reports a roster file whose header or rows cannot
// be parsed into Id,Name pairs.
var ErrMalformedRoster = errors.New("roster is missing required 'Id' and 'Name' columns")

// Identity is one enrolled person.
type Identity struct {
	ID   int
	Name string
}

// Roster is the append-only Id,Name CSV. Rows are never updated or
// deleted; re-enrolling an existing id appends another row.
type Roster struct {
	path string
}

func NewRoster(path string) *Roster {
	return &Roster{path: path}
}

func (r *Roster) Path() string {
	return r.path
}

// Exists reports whether the roster file is present on disk.
func (r *Roster) Exists() bool {
	info, err := os.Stat(r.path)
	return err == nil && !info.IsDir()
}

// Append adds an identity row, creating the file with its header on
// first use. Duplicate ids are not checked; the caller gets exactly
// what it wrote.
func (r *Roster) Append(id int, name string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create roster directory: %w", err)
	}

	writeHeader := !r.Exists()
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write([]string{"Id", "Name"}); err != nil {
			return fmt.Errorf("failed to write roster header: %w", err)
		}
	}
	if err := w.Write([]string{strconv.Itoa(id), name}); err != nil {
		return fmt.Errorf("failed to write roster row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush roster: %w", err)
	}
	return f.Sync()
}

// Load reads all identities in file order. A missing or wrong header,
// or a row whose Id does not parse, yields ErrMalformedRoster.
func (r *Roster) Load() ([]Identity, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRoster, err)
	}
	if len(rows) == 0 || rows[0][0] != "Id" || rows[0][1] != "Name" {
		return nil, ErrMalformedRoster
	}

	identities := make([]Identity, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: bad id %q", ErrMalformedRoster, row[0])
		}
		identities = append(identities, Identity{ID: id, Name: row[1]})
	}
	return identities, nil
}

// Names returns the id -> name lookup used during attendance. When the
// same id was enrolled more than once the earliest row wins.
func (r *Roster) Names() (map[int]string, error) {
	identities, err := r.Load()
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(identities))
	for _, ident := range identities {
		if _, ok := names[ident.ID]; !ok {
			names[ident.ID] = ident.Name
		}
	}
	return names, nil
}
