package types

import "fmt"

// PhoneLength is the exact number of digits in a Phone.
const PhoneLength = 10

// Phone is a ten-digit phone number. No normalization is applied: the
// value is stored exactly as given.
type Phone struct {
	value string
}

// NewPhone validates s and returns it as a Phone.
// Returns ErrInvalidFormat if s is empty, is not exactly PhoneLength
// characters long, or contains anything but the digits 0-9.
func NewPhone(s string) (Phone, error) {
	if s == "" {
		return Phone{}, fmt.Errorf("phone number cannot be empty: %w", ErrInvalidFormat)
	}
	if len(s) != PhoneLength {
		return Phone{}, fmt.Errorf("phone number %q must be exactly %d digits: %w", s, PhoneLength, ErrInvalidFormat)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Phone{}, fmt.Errorf("phone number %q must contain only digits: %w", s, ErrInvalidFormat)
		}
	}
	return Phone{value: s}, nil
}

// MustPhone is NewPhone that panics on invalid input. Use only in tests and
// fixtures.
func MustPhone(s string) Phone {
	p, err := NewPhone(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Phone) String() string { return p.value }

// MarshalText implements encoding.TextMarshaler.
func (p Phone) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated
// the same way NewPhone validates it.
func (p *Phone) UnmarshalText(b []byte) error {
	v, err := NewPhone(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
