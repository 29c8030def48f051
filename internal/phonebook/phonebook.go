// Package phonebook implements the in-memory contact directory and the two
// wire formats it is persisted in.
package phonebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ports/bluebook/internal/contact"
)

// Format identifies one of the supported on-disk encodings.
type Format string

// Supported formats. Both carry the same full_name-keyed mapping.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrNotFound is returned by Remove and Update when no entry matches.
	ErrNotFound = errors.New("phonebook: contact not found")
	// ErrUnknownFormat is returned when a format is not one of json or yaml.
	ErrUnknownFormat = errors.New("phonebook: unknown format")
	// ErrMalformed is returned when input bytes cannot be decoded in the
	// requested format.
	ErrMalformed = errors.New("phonebook: malformed input")
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q (want json or yaml)", ErrUnknownFormat, s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// record is the per-contact wire shape shared by both formats.
type record struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Phone     string `json:"phone" yaml:"phone"`
	Address   string `json:"address" yaml:"address"`
	FullName  string `json:"full_name" yaml:"full_name"`
}

// Phonebook is an ordered collection of contacts. Insertion order is
// preserved and duplicate entries, including duplicate full names, are
// permitted. The zero value is an empty phonebook ready to use.
type Phonebook struct {
	contacts []contact.Contact
}

// New returns an empty phonebook.
func New() *Phonebook { return &Phonebook{} }

// Contacts returns the contacts in insertion order. The slice is shared
// with the phonebook; callers must not mutate it.
func (p *Phonebook) Contacts() []contact.Contact { return p.contacts }

// Len returns the number of contacts.
func (p *Phonebook) Len() int { return len(p.contacts) }

// Add appends c to the end of the phonebook.
func (p *Phonebook) Add(c contact.Contact) {
	p.contacts = append(p.contacts, c)
}

// Remove deletes the first entry equal, field for field, to c.
func (p *Phonebook) Remove(c contact.Contact) error {
	for i, existing := range p.contacts {
		if existing.Equal(c) {
			p.contacts = append(p.contacts[:i], p.contacts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, c.FullName())
}

// Update replaces, in place, the first entry whose full name equals
// c.FullName(). A rename cannot be expressed through Update: the incoming
// contact's full name must already be present in the phonebook.
func (p *Phonebook) Update(c contact.Contact) error {
	for i, existing := range p.contacts {
		if existing.FullName() == c.FullName() {
			p.contacts[i] = c
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, c.FullName())
}

// Search returns, in insertion order, every contact with query as a
// case-insensitive substring of its first name, last name, full name,
// phone, or address. An empty query matches every contact.
func (p *Phonebook) Search(query string) []contact.Contact {
	q := strings.ToLower(query)
	var results []contact.Contact
	for _, c := range p.contacts {
		if matches(c, q) {
			results = append(results, c)
		}
	}
	return results
}

func matches(c contact.Contact, query string) bool {
	fields := []string{c.FirstName, c.LastName, c.FullName(), c.Phone, c.Address}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// Marshal encodes the phonebook as a mapping from full name to contact
// record in the requested format. When two contacts share a full name the
// later one wins the key and the earlier entry is silently dropped.
func (p *Phonebook) Marshal(format Format) ([]byte, error) {
	data := make(map[string]record, len(p.contacts))
	for _, c := range p.contacts {
		data[c.FullName()] = record{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Phone:     c.Phone,
			Address:   c.Address,
			FullName:  c.FullName(),
		}
	}

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(data, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("phonebook: encode json: %w", err)
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("phonebook: encode yaml: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Unmarshal decodes a full_name-keyed mapping in the requested format and
// appends one contact per entry to the phonebook. Mapping keys are ignored;
// each contact is rebuilt from its record fields. Neither format preserves
// mapping order, so entries are appended sorted by mapping key to keep
// loads deterministic.
func (p *Phonebook) Unmarshal(format Format, data []byte) error {
	var raw map[string]map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Decode every entry before appending so a bad record leaves the
	// phonebook untouched.
	decoded := make([]contact.Contact, 0, len(keys))
	for _, k := range keys {
		c, err := contact.FromRecord(raw[k])
		if err != nil {
			return fmt.Errorf("phonebook: entry %q: %w", k, err)
		}
		decoded = append(decoded, c)
	}

	p.contacts = append(p.contacts, decoded...)
	return nil
}

// Load replaces the phonebook's contents with those decoded from path.
// Repeated loads of the same file are idempotent.
func (p *Phonebook) Load(path string, format Format) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p.contacts = nil
	return p.Unmarshal(format, data)
}

// Save writes the complete serialized phonebook to path in one pass,
// replacing any previous contents.
func (p *Phonebook) Save(path string, format Format) error {
	data, err := p.Marshal(format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
