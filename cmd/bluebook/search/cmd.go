// Package searchcmd implements the `bluebook search` command.
package searchcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/bluebook/cmd/bluebook/shared"
	"github.com/go-ports/bluebook/internal/service"
	"github.com/go-ports/bluebook/internal/style"
)

// Command implements `bluebook search`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the search command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "search <query>...",
		Short: "Search contacts by name, phone, or address",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run,
	}
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
	results := pb.Search(strings.Join(args, " "))
	if len(results) == 0 {
		fmt.Fprintln(out, "No matching contacts found.")
		return nil
	}

	st := style.New(svc.Config.Style.Color)
	fmt.Fprintln(out, "Matching contacts:")
	for _, contact := range results {
		fmt.Fprintln(out)
		fmt.Fprint(out, st.Card(contact))
	}
	return nil
}
