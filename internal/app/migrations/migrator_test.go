package migrations

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestVersionFromFilename(t *testing.T) {
	cases := map[string]string{
		"001_init.sql":             "001",
		"migrations/002_extra.sql": "002",
		"003.sql":                  "003",
	}
	for in, want := range cases {
		if got := VersionFromFilename(in); got != want {
			t.Errorf("VersionFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPendingFilesSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "000_dir.sql"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := PendingFiles(dir)
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}
	want := []string{filepath.Join(dir, "001_a.sql"), filepath.Join(dir, "002_b.sql")}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("PendingFiles = %v, want %v", files, want)
	}
}

func TestInitSchemaKeepsCompanyVisitsOnUserDelete(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	var addedBy string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "added_by ") {
			addedBy = line
		}
	}
	if addedBy == "" {
		t.Fatalf("company_visits.added_by column not found")
	}
	if !strings.Contains(addedBy, "ON DELETE SET NULL") || strings.Contains(addedBy, "NOT NULL") {
		t.Fatalf("added_by must be nullable and cleared on user delete, got %q", strings.TrimSpace(addedBy))
	}
	if !strings.Contains(string(data), "REFERENCES users (id) ON DELETE CASCADE") {
		t.Fatalf("placements.user_id must still cascade")
	}
}
