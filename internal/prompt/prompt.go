// Package prompt implements the interactive question flows used by the
// add, remove, and update commands. Input and output are injected so the
// flows can be scripted in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-ports/bluebook/internal/contact"
	"github.com/go-ports/bluebook/internal/style"
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	st  *style.Renderer
	eof bool
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer, st *style.Renderer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, st: st}
}

// EOF reports whether input has been exhausted. Once input runs out every
// Ask returns an empty answer, so interactive loops must stop.
func (p *Prompter) EOF() bool { return p.eof }

// Ask prints label and returns the next line of input, trimmed.
// Returns an empty string at EOF.
func (p *Prompter) Ask(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if p.eof || !p.in.Scan() {
		p.eof = true
		fmt.Fprintln(p.out)
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// Confirm asks a yes/no question until it gets a valid answer.
// EOF counts as no.
func (p *Prompter) Confirm(question string) bool {
	for !p.eof {
		switch strings.ToLower(p.Ask(question + " (yes/no)")) {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		}
		if !p.eof {
			fmt.Fprintln(p.out, "Not a valid entry!")
		}
	}
	return false
}

// SelectContact resolves a list of search candidates to a single confirmed
// contact. With one candidate it shows the card and asks for confirmation;
// with several it lists numbered cards and asks for a choice first.
// Returns false when the user cancels or input runs out.
func (p *Prompter) SelectContact(candidates []contact.Contact) (contact.Contact, bool) {
	var chosen contact.Contact

	switch len(candidates) {
	case 0:
		return contact.Contact{}, false
	case 1:
		chosen = candidates[0]
		fmt.Fprintln(p.out)
		fmt.Fprint(p.out, p.st.Card(chosen))
	default:
		fmt.Fprintln(p.out, "Multiple contacts found with the provided name. "+
			"Please choose one of the following:")
		for i, c := range candidates {
			fmt.Fprintln(p.out)
			fmt.Fprint(p.out, p.st.NumberedCard(i+1, c))
		}
		for {
			if p.eof {
				return contact.Contact{}, false
			}
			answer := p.Ask("Which item number would you like to proceed with")
			if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(candidates) {
				chosen = candidates[n-1]
				break
			}
			if !p.eof {
				fmt.Fprintln(p.out, "Invalid choice. Please try again.")
			}
		}
	}

	if !p.Confirm("Are you sure you want to proceed with this contact?") {
		fmt.Fprintln(p.out, "Canceled.")
		return contact.Contact{}, false
	}
	return chosen, true
}
