package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRosterAppendCreatesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "StudentDetails", "StudentDetails.csv")
	roster := NewRoster(path)

	if roster.Exists() {
		t.Fatal("roster should not exist before first append")
	}
	if err := roster.Append(7, "Alice"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading roster: %v", err)
	}
	want := "Id,Name\n7,Alice\n"
	if string(data) != want {
		t.Errorf("roster contents = %q; want %q", data, want)
	}
}

func TestRosterAppendDoesNotRewriteHeader(t *testing.T) {
	roster := NewRoster(filepath.Join(t.TempDir(), "roster.csv"))

	for _, ident := range []Identity{{1, "Alice"}, {2, "Bob"}, {1, "Mallory"}} {
		if err := roster.Append(ident.ID, ident.Name); err != nil {
			t.Fatalf("Append(%v) failed: %v", ident, err)
		}
	}

	identities, err := roster.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(identities) != 3 {
		t.Fatalf("got %d identities; want 3 (duplicate ids are appended, not rejected)", len(identities))
	}
	if identities[2].ID != 1 || identities[2].Name != "Mallory" {
		t.Errorf("last row = %+v; want {1 Mallory}", identities[2])
	}
}

func TestRosterNamesFirstRowWins(t *testing.T) {
	roster := NewRoster(filepath.Join(t.TempDir(), "roster.csv"))
	mustAppend(t, roster, 1, "Alice")
	mustAppend(t, roster, 1, "Mallory")
	mustAppend(t, roster, 2, "Bob")

	names, err := roster.Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if names[1] != "Alice" {
		t.Errorf("names[1] = %q; want %q (earliest enrollment wins)", names[1], "Alice")
	}
	if names[2] != "Bob" {
		t.Errorf("names[2] = %q; want %q", names[2], "Bob")
	}
}

func TestRosterLoadMalformed(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"wrong header", "Uid,FullName\n1,Alice\n"},
		{"empty file", ""},
		{"non-numeric id", "Id,Name\nseven,Alice\n"},
		{"wrong column count", "Id,Name\n1,Alice,extra\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roster.csv")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := NewRoster(path).Load()
			if !errors.Is(err, ErrMalformedRoster) {
				t.Errorf("Load() error = %v; want ErrMalformedRoster", err)
			}
		})
	}
}

func TestRosterLoadMissingFile(t *testing.T) {
	_, err := NewRoster(filepath.Join(t.TempDir(), "missing.csv")).Load()
	if err == nil {
		t.Error("expected error for missing roster")
	}
	if errors.Is(err, ErrMalformedRoster) {
		t.Error("missing file should not be reported as malformed")
	}
}

func mustAppend(t *testing.T, r *Roster, id int, name string) {
	t.Helper()
	if err := r.Append(id, name); err != nil {
		t.Fatalf("Append(%d, %q) failed: %v", id, name, err)
	}
}
