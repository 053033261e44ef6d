package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/osadmin/cmd/osadmin/handlers"
)

// SSHRule returns the ssh-rule command group.
func SSHRule(g *handlers.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssh-rule",
		Short: "Manage SSH access rules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add PROJECT",
		Short: "Allow inbound SSH on the project's security group",
		Long: `Allow inbound TCP port 22 from 0.0.0.0/0 on the project's security group.

A project without a security group is reported as a warning and the
command still succeeds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.AddSSHRule(cmd.Context(), *g, args[0])
		},
	})

	return cmd
}
