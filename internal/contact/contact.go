// Package contact defines the contact record stored in a phonebook.
package contact

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned by FromRecord when a required field is absent.
var ErrMissingField = errors.New("contact: missing required field")

// Contact is one person's stored name, phone, and address record.
// Phone and Address may be empty. The full name is never stored; it is
// derived on demand via FullName so it cannot go stale when the name
// fields change.
type Contact struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// New constructs a Contact.
func New(first, last, phone, address string) Contact {
	return Contact{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Address:   address,
	}
}

// FromRecord constructs a Contact from a decoded wire record.
// first_name and last_name are required; phone and address default to
// empty. Any full_name entry in the record is ignored.
func FromRecord(rec map[string]any) (Contact, error) {
	first, ok := rec["first_name"].(string)
	if !ok {
		return Contact{}, fmt.Errorf("%w: first_name", ErrMissingField)
	}
	last, ok := rec["last_name"].(string)
	if !ok {
		return Contact{}, fmt.Errorf("%w: last_name", ErrMissingField)
	}
	phone, _ := rec["phone"].(string)
	address, _ := rec["address"].(string)
	return New(first, last, phone, address), nil
}

// FullName returns the first and last name joined by a single space.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Equal reports whether two contacts match field for field.
func (c Contact) Equal(other Contact) bool {
	return c == other
}
