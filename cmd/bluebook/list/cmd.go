// Package listcmd implements the `bluebook list` command.
package listcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/bluebook/cmd/bluebook/shared"
	"github.com/go-ports/bluebook/internal/service"
	"github.com/go-ports/bluebook/internal/style"
)

// Command implements `bluebook list`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "Display every contact in the phonebook",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
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
	if pb.Len() == 0 {
		fmt.Fprintln(out, "The phonebook is empty.")
		return nil
	}

	st := style.New(svc.Config.Style.Color)
	for _, contact := range pb.Contacts() {
		fmt.Fprintln(out)
		fmt.Fprint(out, st.Card(contact))
	}
	return nil
}
