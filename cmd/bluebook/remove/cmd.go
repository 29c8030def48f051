// Package removecmd implements the `bluebook remove` command.
package removecmd

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

// Command implements `bluebook remove`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	yes bool
}

// New creates the remove command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "remove <name>...",
		Short: "Remove a contact from the phonebook",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run,
	}

	c.cmd.Flags().BoolVar(&c.yes, "yes", false,
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
		st := style.New(svc.Config.Style.Color)
		p := prompt.New(cmd.InOrStdin(), out, st)
		chosen, ok := p.SelectContact(candidates)
		if !ok {
			return nil
		}
		target = chosen
	}

	if err := pb.Remove(target); err != nil {
		return err
	}
	if err := svc.Persist(pb); err != nil {
		return err
	}

	fmt.Fprintln(out, "Contact removed successfully!")
	return nil
}
