package types

import (
	"fmt"
	"iter"
	"slices"
)

// Directory holds Records keyed by name. Every key equals the name of the
// Record stored under it. A Directory is not safe for concurrent use.
type Directory struct {
	records map[string]*Record
	order   []string // keys in insertion order
}

// NewDirectory returns an empty Directory.
func NewDirectory() *Directory {
	return &Directory{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. A record already stored under that
// name is replaced and the entry keeps its original position. A nil record
// is ignored.
func (d *Directory) AddRecord(r *Record) {
	if r == nil {
		return
	}
	key := r.Name().String()
	if _, ok := d.records[key]; !ok {
		d.order = append(d.order, key)
	}
	d.records[key] = r
}

// Find returns the record stored under name. The second result is false
// on a miss.
func (d *Directory) Find(name string) (*Record, bool) {
	r, ok := d.records[name]
	return r, ok
}

// Delete removes the record stored under name.
// Returns ErrNotFound if there is none.
func (d *Directory) Delete(name string) error {
	if _, ok := d.records[name]; !ok {
		return fmt.Errorf("record %q: %w", name, ErrNotFound)
	}
	delete(d.records, name)
	if i := slices.Index(d.order, name); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
	return nil
}

// Len returns the number of records.
func (d *Directory) Len() int { return len(d.order) }

// Names returns the record names in insertion order.
func (d *Directory) Names() []string { return slices.Clone(d.order) }

// All iterates over (name, record) pairs in insertion order. Records
// deleted during the iteration are skipped; records added during it are
// not visited.
func (d *Directory) All() iter.Seq2[string, *Record] {
	return func(yield func(string, *Record) bool) {
		for _, name := range slices.Clone(d.order) {
			r, ok := d.records[name]
			if !ok {
				continue
			}
			if !yield(name, r) {
				return
			}
		}
	}
}
