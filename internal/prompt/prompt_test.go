package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/bluebook/internal/contact"
	"github.com/go-ports/bluebook/internal/prompt"
	"github.com/go-ports/bluebook/internal/style"
)

func newPrompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return prompt.New(strings.NewReader(input), &out, style.New("never")), &out
}

func TestAsk(t *testing.T) {
	c := qt.New(t)

	c.Run("returns trimmed line", func(c *qt.C) {
		p, out := newPrompter("  Jane  \n")
		c.Assert(p.Ask("Enter the First name"), qt.Equals, "Jane")
		c.Assert(out.String(), qt.Contains, "Enter the First name: ")
	})

	c.Run("empty at EOF", func(c *qt.C) {
		p, _ := newPrompter("")
		c.Assert(p.Ask("anything"), qt.Equals, "")
		c.Assert(p.EOF(), qt.IsTrue)
	})
}

func TestConfirm(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "y shorthand", input: "y\n", want: true},
		{name: "uppercase YES", input: "YES\n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "n shorthand", input: "n\n", want: false},
		{name: "invalid then yes", input: "maybe\nyes\n", want: true},
		{name: "eof counts as no", input: "", want: false},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			p, _ := newPrompter(tt.input)
			c.Assert(p.Confirm("Proceed?"), qt.Equals, tt.want)
		})
	}

	c.Run("invalid entry is reported", func(c *qt.C) {
		p, out := newPrompter("maybe\nno\n")
		c.Assert(p.Confirm("Proceed?"), qt.IsFalse)
		c.Assert(out.String(), qt.Contains, "Not a valid entry!")
	})
}

func TestSelectContact(t *testing.T) {
	c := qt.New(t)

	smith := contact.New("Jane", "Smith", "555-1111", "1 Oak St")
	doyle := contact.New("Jane", "Doyle", "555-2222", "2 Pine St")

	c.Run("no candidates", func(c *qt.C) {
		p, _ := newPrompter("")
		_, ok := p.SelectContact(nil)
		c.Assert(ok, qt.IsFalse)
	})

	c.Run("single candidate confirmed", func(c *qt.C) {
		p, out := newPrompter("yes\n")
		got, ok := p.SelectContact([]contact.Contact{smith})
		c.Assert(ok, qt.IsTrue)
		c.Assert(got, qt.Equals, smith)
		c.Assert(out.String(), qt.Contains, "full name : Jane Smith")
	})

	c.Run("single candidate declined", func(c *qt.C) {
		p, out := newPrompter("no\n")
		_, ok := p.SelectContact([]contact.Contact{smith})
		c.Assert(ok, qt.IsFalse)
		c.Assert(out.String(), qt.Contains, "Canceled.")
	})

	c.Run("multiple candidates pick the second", func(c *qt.C) {
		p, out := newPrompter("2\nyes\n")
		got, ok := p.SelectContact([]contact.Contact{smith, doyle})
		c.Assert(ok, qt.IsTrue)
		c.Assert(got, qt.Equals, doyle)
		c.Assert(out.String(), qt.Contains, "Item number: 1")
		c.Assert(out.String(), qt.Contains, "Item number: 2")
	})

	c.Run("invalid choice then valid", func(c *qt.C) {
		p, out := newPrompter("9\nabc\n1\ny\n")
		got, ok := p.SelectContact([]contact.Contact{smith, doyle})
		c.Assert(ok, qt.IsTrue)
		c.Assert(got, qt.Equals, smith)
		c.Assert(out.String(), qt.Contains, "Invalid choice. Please try again.")
	})

	c.Run("eof while choosing cancels", func(c *qt.C) {
		p, _ := newPrompter("")
		_, ok := p.SelectContact([]contact.Contact{smith, doyle})
		c.Assert(ok, qt.IsFalse)
	})
}
