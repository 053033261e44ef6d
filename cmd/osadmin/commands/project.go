package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/osadmin/cmd/osadmin/handlers"
)

// Project returns the project command group.
func Project(g *handlers.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check NAME",
		Short: "Check whether a project name is available",
		Long: `Check whether a project name is available.

Exits with status 1 when a project of that name exists or the lookup failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.CheckProject(cmd.Context(), *g, args[0])
		},
	})

	cmd.AddCommand(projectCreate(g))
	cmd.AddCommand(projectStatus(g, "enable", true))
	cmd.AddCommand(projectStatus(g, "disable", false))

	return cmd
}

func projectCreate(g *handlers.Globals) *cobra.Command {
	var opts handlers.ProjectOptions

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Long: `Create a project and set its properties.

Each --property is applied as a separate update after the project exists,
in key order. A failing property leaves the earlier ones in place.

Example:
  osadmin project create proj1 --description "Research" --property quota=10 --enabled`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.CreateProject(cmd.Context(), *g, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Project description")
	cmd.Flags().StringArrayVarP(&opts.Properties, "property", "p", nil, "Project property as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.Enabled, "enabled", false, "Create the project enabled")

	return cmd
}

func projectStatus(g *handlers.Globals, verb string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " NAME",
		Short: "Set a project's enabled flag to " + boolWord(enabled),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.SetProjectEnabled(cmd.Context(), *g, args[0], enabled)
		},
	}
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
