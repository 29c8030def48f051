// Package exportcmd implements the `bluebook export` command.
package exportcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/bluebook/cmd/bluebook/shared"
	"github.com/go-ports/bluebook/internal/export"
	"github.com/go-ports/bluebook/internal/phonebook"
	"github.com/go-ports/bluebook/internal/service"
)

// Command implements `bluebook export`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	open bool
}

// New creates the export command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:       "export <json|yaml|html>",
		Short:     "Export the phonebook to a timestamped file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"json", "yaml", "html"},
		RunE:      c.run,
	}

	c.cmd.Flags().BoolVar(&c.open, "open", false,
		"Open an html export in the default browser")

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

	var path string
	switch args[0] {
	case "html":
		path, err = svc.ExportHTML(pb)
		if err != nil {
			return err
		}
		if c.open {
			if err := export.OpenBrowser(path); err != nil {
				return fmt.Errorf("export: open browser: %w", err)
			}
		}
	default:
		format, parseErr := phonebook.ParseFormat(args[0])
		if parseErr != nil {
			return parseErr
		}
		path, err = svc.Export(pb, format)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Phonebook exported to: %s\n", path)
	return nil
}
