package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/osadmin/cmd/osadmin/handlers"
)

// User returns the user command group.
func User(g *handlers.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check NAME",
		Short: "Check whether a user name is available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.CheckUser(cmd.Context(), *g, args[0])
		},
	})

	cmd.AddCommand(userCreate(g))
	cmd.AddCommand(userStatus(g, "enable", true))
	cmd.AddCommand(userStatus(g, "disable", false))
	cmd.AddCommand(userSetPassword(g))

	return cmd
}

func userCreate(g *handlers.Globals) *cobra.Command {
	var opts handlers.UserOptions

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a user",
		Long: `Create a user.

Without --password the password is prompted for on the terminal.

Example:
  osadmin user create alice --email alice@example.com --enabled`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.CreateUser(cmd.Context(), *g, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Email, "email", "e", "", "E-mail address (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Initial password (prompted when omitted)")
	cmd.Flags().BoolVar(&opts.Enabled, "enabled", false, "Create the user enabled")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func userStatus(g *handlers.Globals, verb string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " NAME",
		Short: "Set a user's enabled flag to " + boolWord(enabled),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.SetUserEnabled(cmd.Context(), *g, args[0], enabled)
		},
	}
}

func userSetPassword(g *handlers.Globals) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password NAME",
		Short: "Change a user's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.SetUserPassword(cmd.Context(), *g, args[0], password)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password (prompted when omitted)")

	return cmd
}
