package wallet

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"

	log "github.com/sirupsen/logrus"
)

// ErrRecordNotFound is returned by Change when no record has the requested key.
var ErrRecordNotFound = errors.New("record not found")

// Store persists a sequence of records. *Recorder is the file backed implementation.
type Store interface {
	Read() ([]Record, error)
	Write(records []Record) error
}

// Wallet is an in-memory, ordered list of records backed by a Store.
//
// Mutations (Add, Change) only affect memory until Save is called.
type Wallet struct {
	records []Record
	store   Store
}

// New creates a Wallet with all the records currently in store.
func New(store Store) (*Wallet, error) {
	records, err := store.Read()
	if err != nil {
		return nil, err
	}
	return &Wallet{records: records, store: store}, nil
}

// Open opens the wallet stored in the file at path, creating an empty file
// if it does not exist.
func Open(path string) (*Wallet, error) {
	created, err := EnsureFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not create record file %q: %w", path, err)
	}
	if created {
		log.Warnf("record file %q does not exist, created an empty one", path)
	}
	return New(NewRecorder(path))
}

// Add appends r to the wallet. There is no validation.
func (w *Wallet) Add(r Record) {
	w.records = append(w.records, r)
}

// Change replaces the first record with the same date, category and amount as r.
//
// As the key is read from r itself, only the comment of an existing record
// can effectively be changed.
func (w *Wallet) Change(r Record) error {
	i := w.index(r)
	if i < 0 {
		return fmt.Errorf("%w: %v %s %s", ErrRecordNotFound, r.Date, r.Category, FormatAmount(r.Amount))
	}
	w.records[i] = r
	return nil
}

// index returns the position of the first record with the same key as r, or -1.
func (w *Wallet) index(r Record) int {
	return slices.IndexFunc(w.records, r.sameKey)
}

// Find returns every record matching f, in wallet order.
func (w *Wallet) Find(f Filter) []Record {
	found := make([]Record, 0)
	for _, r := range w.Records() {
		if f.Match(r) {
			found = append(found, r)
		}
	}
	return found
}

// Balance computes income, expenses and net over all records in memory.
func (w *Wallet) Balance() Balance {
	return computeBalance(w.records)
}

// Save sorts the records by date and writes them to the store.
// The sort is stable, meaning records on the same day maintain their relative order.
func (w *Wallet) Save() error {
	w.stableSort()
	if err := w.store.Write(w.records); err != nil {
		return fmt.Errorf("could not save wallet: %w", err)
	}
	return nil
}

// Load replaces the records in memory with the ones in the store, discarding
// unsaved changes. On error the wallet is left unchanged.
func (w *Wallet) Load() error {
	records, err := w.store.Read()
	if err != nil {
		return fmt.Errorf("could not load wallet: %w", err)
	}
	w.records = records
	return nil
}

// Records returns an iterator over the records in their current order.
func (w *Wallet) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range w.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Len returns the number of records in memory.
func (w *Wallet) Len() int { return len(w.records) }

// Categories returns the sorted list of distinct categories in the wallet.
func (w *Wallet) Categories() []string {
	var categories []string
	for _, r := range w.records {
		categories = append(categories, r.Category)
	}
	slices.Sort(categories)
	return slices.Compact(categories)
}

// stableSort sorts records by date. Records on the same day keep their relative order.
func (w *Wallet) stableSort() {
	sort.SliceStable(w.records, func(i, j int) bool {
		return w.records[i].Date.Before(w.records[j].Date)
	})
}
