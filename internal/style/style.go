// Package style renders contacts for terminal output. The phonebook core
// has no dependency on this package; commands pass rendered strings to
// their output writers.
package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/go-ports/bluebook/internal/contact"
)

// Renderer formats contacts as indented field cards, optionally colorized.
// The zero value renders plain text.
type Renderer struct {
	label lipgloss.Style
	head  lipgloss.Style
}

// New returns a Renderer for the given color mode: "auto" enables color
// only when stdout is a terminal, "always" and "never" force it on or off.
func New(mode string) *Renderer {
	enabled := mode == "always" || (mode == "auto" && stdoutIsTerminal())
	r := &Renderer{}
	if enabled {
		r.label = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
		r.head = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	}
	return r
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Card renders one contact as a block of "  <label> : <value>" lines.
func (r *Renderer) Card(c contact.Contact) string {
	rows := []struct{ label, value string }{
		{"first name", c.FirstName},
		{"last name", c.LastName},
		{"phone", c.Phone},
		{"address", c.Address},
		{"full name", c.FullName()},
	}

	var b strings.Builder
	for _, row := range rows {
		// Pad before styling so ANSI codes do not skew the column.
		label := r.label.Render(fmt.Sprintf("%15s", row.label))
		fmt.Fprintf(&b, "  %s : %s\n", label, row.value)
	}
	return b.String()
}

// NumberedCard renders a card preceded by its item number, used by the
// interactive disambiguation flow.
func (r *Renderer) NumberedCard(n int, c contact.Contact) string {
	return r.head.Render(fmt.Sprintf("Item number: %d", n)) + "\n" + r.Card(c)
}
