package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/wallet/date"
	"github.com/google/go-cmp/cmp"
)

// dateComparer lets cmp compare records, date.Date has only unexported fields.
var dateComparer = cmp.Comparer(func(a, b date.Date) bool { return a == b })

// rec is a helper for test to create records from literals.
func rec(day, category string, amount float64, comment string) Record {
	return NewRecord(date.MustParse(day), category, amount, comment)
}

// writeFile creates a file named name in a temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %q: %v", path, err)
	}
	return path
}

// memStore is an in-memory Store counting writes.
type memStore struct {
	records []Record
	writes  int
	readErr error
}

func (m *memStore) Read() ([]Record, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return append([]Record(nil), m.records...), nil
}

func (m *memStore) Write(records []Record) error {
	m.writes++
	m.records = append([]Record(nil), records...)
	return nil
}
