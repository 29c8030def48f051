// Package addcmd implements the `bluebook add` command.
package addcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/bluebook/cmd/bluebook/shared"
	"github.com/go-ports/bluebook/internal/contact"
	"github.com/go-ports/bluebook/internal/prompt"
	"github.com/go-ports/bluebook/internal/service"
	"github.com/go-ports/bluebook/internal/style"
)

// Command implements `bluebook add`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	first   string
	last    string
	phone   string
	address string
}

// New creates the add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "add",
		Short: "Add a new contact to the phonebook",
		Long: "Add a new contact. Missing fields are prompted for interactively.\n" +
			"A contact needs a first or last name, plus a phone number or an address.",
		RunE: c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.first, "first", "", "First name")
	f.StringVar(&c.last, "last", "", "Last name")
	f.StringVar(&c.phone, "phone", "", "Phone number")
	f.StringVar(&c.address, "address", "", "Address")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
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

	first, last, phone, address := c.first, c.last, c.phone, c.address
	for {
		if first == "" && last == "" {
			if first == "" {
				first = p.Ask("Enter the First name")
			}
			if last == "" {
				last = p.Ask("Enter the Last name")
			}
		}
		if phone == "" && address == "" {
			if phone == "" {
				phone = p.Ask("Enter the Phone number")
			}
			if address == "" {
				address = p.Ask("Enter the Address")
			}
		}
		if (first != "" || last != "") && (phone != "" || address != "") {
			break
		}
		if p.EOF() {
			return fmt.Errorf("add: a first or last name plus a phone number or address are required")
		}
		fmt.Fprintln(out, "Either a First or Last name along with at least a phone number "+
			"or an address is required. Please try again!")
	}

	pb.Add(contact.New(first, last, phone, address))
	if err := svc.Persist(pb); err != nil {
		return err
	}

	fmt.Fprintln(out, "Contact added successfully!")
	return nil
}
