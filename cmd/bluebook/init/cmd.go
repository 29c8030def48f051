// Package initcmd implements the `bluebook init` command.
package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ports/bluebook/cmd/bluebook/shared"
	"github.com/go-ports/bluebook/internal/phonebook"
	"github.com/go-ports/bluebook/internal/service"
)

// Command implements `bluebook init`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the init command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize the phonebook store",
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

	if err := os.MkdirAll(svc.ExportsDir(), 0o755); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	// Write an empty store only when none exists yet.
	if _, err := os.Stat(svc.StorePath()); os.IsNotExist(err) {
		if err := svc.Persist(phonebook.New()); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Phonebook initialized at %s\n", svc.BookHome)
	return nil
}
