// Package rootcmd wires the root cobra.Command for the bluebook CLI binary.
package rootcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	addcmd "github.com/go-ports/bluebook/cmd/bluebook/add"
	configcmd "github.com/go-ports/bluebook/cmd/bluebook/config"
	exportcmd "github.com/go-ports/bluebook/cmd/bluebook/export"
	initcmd "github.com/go-ports/bluebook/cmd/bluebook/init"
	listcmd "github.com/go-ports/bluebook/cmd/bluebook/list"
	removecmd "github.com/go-ports/bluebook/cmd/bluebook/remove"
	searchcmd "github.com/go-ports/bluebook/cmd/bluebook/search"
	"github.com/go-ports/bluebook/cmd/bluebook/shared"
	updatecmd "github.com/go-ports/bluebook/cmd/bluebook/update"
	"github.com/go-ports/bluebook/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the bluebook CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "bluebook",
		Short:         "Bluebook — a command-line phonebook",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", buildinfo.Version, buildinfo.BuildDate, buildinfo.GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(
		&ctx.BookHome, "book-home", "",
		"Override book home directory (default: $BLUEBOOK_HOME env → persisted config → ~/.bluebook)",
	)
	root.PersistentFlags().StringVar(
		&ctx.Format, "format", "",
		"Override store format: json or yaml (default: configured book.format)",
	)

	root.AddCommand(
		initcmd.New(ctx).Cmd(),
		addcmd.New(ctx).Cmd(),
		removecmd.New(ctx).Cmd(),
		updatecmd.New(ctx).Cmd(),
		searchcmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		exportcmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
	)

	return root
}
