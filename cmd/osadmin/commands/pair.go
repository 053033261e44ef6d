package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/osadmin/cmd/osadmin/handlers"
)

// Pair returns the command granting a role to a user on a project.
func Pair(g *handlers.Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "pair USER PROJECT ROLE",
		Short: "Grant a role to a user on a project",
		Long: `Grant a role to a user on a project.

The user, project and role are looked up by name. If any of them is
missing no grant is made.

Example:
  osadmin pair alice proj1 member`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Pair(cmd.Context(), *g, args[0], args[1], args[2])
		},
	}
}
