package types

import "fmt"

// Name is a contact's personal name. The zero value is not a valid Name;
// construct one with NewName.
type Name struct {
	value string
}

// NewName validates s and returns it as a Name.
// Returns ErrInvalidFormat if s is empty.
func NewName(s string) (Name, error) {
	if s == "" {
		return Name{}, fmt.Errorf("name cannot be empty: %w", ErrInvalidFormat)
	}
	return Name{value: s}, nil
}

// MustName is NewName that panics on invalid input. Use only in tests and
// fixtures.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) String() string { return n.value }

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated
// the same way NewName validates it.
func (n *Name) UnmarshalText(b []byte) error {
	v, err := NewName(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
