// Package updatecmd implements the `bluebook update` command.
package updatecmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/bluebook/cmd/bluebook/shared"
	"github.com/go-ports/bluebook/internal/contact"
	"github.com/go-ports/bluebook/internal/prompt"
	"github.com/go-ports/bluebook/internal/service"
	"github.com/go-ports/bluebook/internal/style"
)

// Command implements `bluebook update`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	first   string
	last    string
	phone   string
	address string
	yes     bool
}

// New creates the update command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "update <name>...",
		Short: "Update an existing contact",
		Long: "Update the contact matching <name>. All four fields are replaced;\n" +
			"values not given as flags are prompted for interactively.",
		Args: cobra.MinimumNArgs(1),
		RunE: c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.first, "first", "", "Updated first name")
	f.StringVar(&c.last, "last", "", "Updated last name")
	f.StringVar(&c.phone, "phone", "", "Updated phone number")
	f.StringVar(&c.address, "address", "", "Updated address")
	f.BoolVar(&c.yes, "yes", false,
		"Skip the confirmation prompt (only when the name matches a single contact)")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := service.New(c.ctx.BookHome, c.ctx.Format)
	if err != nil {
		return err
	}
	pb, err := svc.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := style.New(svc.Config.Style.Color)
	p := prompt.New(cmd.InOrStdin(), out, st)

	name := strings.Join(args, " ")
	candidates := pb.Search(name)
	if len(candidates) == 0 {
		fmt.Fprintln(out, "No contacts found with the provided name.")
		return nil
	}

	var target contact.Contact
	if c.yes && len(candidates) == 1 {
		target = candidates[0]
	} else {
		chosen, ok := p.SelectContact(candidates)
		if !ok {
			return nil
		}
		target = chosen
	}

	first, last, phone, address := c.first, c.last, c.phone, c.address
	for first == "" && last == "" {
		if p.EOF() {
			return fmt.Errorf("update: at least one of first or last name is required")
		}
		fmt.Fprintln(out, "At least one of First or Last name is required!")
		first = p.Ask("Enter the updated First name")
		last = p.Ask("Enter the updated Last name")
	}
	for phone == "" && address == "" {
		if p.EOF() {
			return fmt.Errorf("update: at least one of phone or address is required")
		}
		fmt.Fprintln(out, "At least one of Phone or Address is required!")
		phone = p.Ask("Enter the updated phone number")
		address = p.Ask("Enter the updated address")
	}

	updated := contact.New(first, last, phone, address)
	if updated.FullName() == target.FullName() {
		if err := pb.Update(updated); err != nil {
			return err
		}
	} else {
		// Update is keyed by the incoming contact's full name, so a rename
		// can never match the old entry. Compose remove+add instead; the
		// renamed contact moves to the end of the book.
		if err := pb.Remove(target); err != nil {
			return err
		}
		pb.Add(updated)
	}

	if err := svc.Persist(pb); err != nil {
		return err
	}

	fmt.Fprintln(out, "Contact updated successfully!")
	return nil
}
