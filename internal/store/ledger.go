package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ErrMalformedLedger reports a ledger file whose header or rows cannot
// be parsed.
var ErrMalformedLedger = errors.New("ledger is missing required 'Id,Name,Date,Time' columns")

const (
	ledgerDateFormat = "2006-01-02"
	ledgerTimeFormat = "15:04:05"
)

// Record is one confirmed attendance. For a given ledger the (ID, Date)
// pair is unique; records are never updated or removed.
type Record struct {
	ID   int
	Name string
	Date string // YYYY-MM-DD
	Time string // HH:MM:SS
}

// NewRecord builds a record stamped with the given wall-clock time.
func NewRecord(id int, name string, now time.Time) Record {
	return Record{
		ID:   id,
		Name: name,
		Date: now.Format(ledgerDateFormat),
		Time: now.Format(ledgerTimeFormat),
	}
}

// Ledger is one calendar date's attendance file, held fully in memory
// and rewritten to disk on every new record so a crash loses at most
// the in-flight mark.
type Ledger struct {
	path    string
	records []Record
	seen    map[int]bool
}

// LedgerPath returns the per-date file name inside dir.
func LedgerPath(dir string, date time.Time) string {
	return filepath.Join(dir, "Attendance_"+date.Format(ledgerDateFormat)+".csv")
}

// OpenLedger loads the ledger for the given date, seeding the dedup set
// with ids already confirmed that day, or starts an empty one if no
// file exists yet.
func OpenLedger(dir string, date time.Time) (*Ledger, error) {
	l := &Ledger{
		path: LedgerPath(dir, date),
		seen: make(map[int]bool),
	}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return l, nil
	}
	records, err := ReadLedger(l.path)
	if err != nil {
		return nil, err
	}
	l.records = records
	for _, rec := range records {
		l.seen[rec.ID] = true
	}
	return l, nil
}

func (l *Ledger) Path() string {
	return l.path
}

// Seen reports whether id already has a record in this ledger.
func (l *Ledger) Seen(id int) bool {
	return l.seen[id]
}

// Records returns the records in append order.
func (l *Ledger) Records() []Record {
	return l.records
}

// Mark appends a record and flushes the full ledger to disk
// synchronously. An id already present is skipped and reported as not
// written; the first mark of the day wins.
func (l *Ledger) Mark(rec Record) (written bool, err error) {
	if l.seen[rec.ID] {
		return false, nil
	}
	l.records = append(l.records, rec)
	if err := l.flush(); err != nil {
		l.records = l.records[:len(l.records)-1]
		return false, err
	}
	l.seen[rec.ID] = true
	return true, nil
}

// flush rewrites the whole file. Simple overwrite-with-full-contents
// keeps the format trivially consistent at the cost of O(n) writes.
func (l *Ledger) flush() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create attendance directory: %w", err)
	}
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Id", "Name", "Date", "Time"}); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	for _, rec := range l.records {
		row := []string{strconv.Itoa(rec.ID), rec.Name, rec.Date, rec.Time}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write ledger row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush ledger: %w", err)
	}
	return f.Sync()
}

// ReadLedger parses a ledger file into records. Used both to seed the
// dedup set and by the CLI to print a day's attendance.
func ReadLedger(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
	}
	if len(rows) == 0 || rows[0][0] != "Id" || rows[0][1] != "Name" || rows[0][2] != "Date" || rows[0][3] != "Time" {
		return nil, ErrMalformedLedger
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: bad id %q", ErrMalformedLedger, row[0])
		}
		records = append(records, Record{ID: id, Name: row[1], Date: row[2], Time: row[3]})
	}
	return records, nil
}
