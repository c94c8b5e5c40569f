package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Record is a single contact: one Name and an ordered list of Phones.
// Phone values are unique within a Record; the same number may appear in
// other records.
type Record struct {
	id     string  // UUID v7, generated on creation.
	name   Name    // Set once by NewRecord.
	phones []Phone // Insertion order.
}

// NewRecord returns a Record with the given name and no phones.
// Returns ErrInvalidFormat if name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{id: generateUUID(), name: n}, nil
}

// RestoreRecord rebuilds a previously exported Record. An empty id gets a
// fresh one. Phones go through AddPhone, so invalid or duplicate numbers
// fail the same way they would when added one by one.
func RestoreRecord(id, name string, phones []string) (*Record, error) {
	r, err := NewRecord(name)
	if err != nil {
		return nil, err
	}
	if id != "" {
		if _, err := uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("record id %q: %w", id, ErrInvalidFormat)
		}
		r.id = id
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ID returns the record's UUID.
func (r *Record) ID() string { return r.id }

// Name returns the record's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the record's phones in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Len returns the number of phones on the record.
func (r *Record) Len() int { return len(r.phones) }

// AddPhone validates phone and appends it.
// Returns ErrInvalidFormat if phone is not a valid Phone, or
// ErrAlreadyExists if the record already holds it.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	if r.indexOf(phone) >= 0 {
		return fmt.Errorf("phone number %q: %w", phone, ErrAlreadyExists)
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the entry equal to phone.
// Returns ErrNotFound if the record does not hold it.
func (r *Record) RemovePhone(phone string) error {
	i := r.indexOf(phone)
	if i < 0 {
		return fmt.Errorf("phone number %q: %w", phone, ErrNotFound)
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// EditPhone replaces oldPhone with newPhone at the same position.
// Returns ErrNotFound if oldPhone is absent, ErrInvalidFormat if newPhone
// is not a valid Phone, or ErrAlreadyExists if newPhone is held at another
// position. The record is unchanged on error.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	i := r.indexOf(oldPhone)
	if i < 0 {
		return fmt.Errorf("phone number %q: %w", oldPhone, ErrNotFound)
	}
	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	if j := r.indexOf(newPhone); j >= 0 && j != i {
		return fmt.Errorf("phone number %q: %w", newPhone, ErrAlreadyExists)
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the entry equal to phone. The second result is false
// when the record does not hold it.
func (r *Record) FindPhone(phone string) (Phone, bool) {
	i := r.indexOf(phone)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// String renders the record as
// "Contact name: <name>, phones: <phone1>; <phone2>".
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return "Contact name: " + r.name.String() + ", phones: " + strings.Join(phones, "; ")
}

// indexOf returns the position of the first phone equal to phone, or -1.
func (r *Record) indexOf(phone string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == phone })
}

// generateUUID generates a new UUID v7 for record IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
