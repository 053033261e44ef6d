package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/osadmin/cmd/osadmin/handlers"
)

// Network returns the network command group.
func Network(g *handlers.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage project networks",
	}
	cmd.AddCommand(networkInit(g))
	return cmd
}

// networkInit returns the network init command.
//
// It creates, in order: the private network, its subnet, and a router with
// its gateway on the external network and an interface on the subnet.
// Nothing is removed when a later step fails.
func networkInit(g *handlers.Globals) *cobra.Command {
	var opts handlers.NetworkOptions

	cmd := &cobra.Command{
		Use:   "init PROJECT",
		Short: "Create a project's private network, subnet and router",
		Long: `Create a project's initial network topology.

The following resources are created in the project:
  - Network "private"
  - Subnet "private" (IPv4, DHCP enabled)
  - Router "router" with its gateway on the external network
  - Router interface on the subnet

If a step fails, resources created by earlier steps are left in place
and listed.

Example:
  osadmin network init proj1 --external-network public \
    --cidr 192.168.10.0/24 --gateway 192.168.10.1 --dns 8.8.8.8 --dns 8.8.4.4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.InitNetwork(cmd.Context(), *g, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.ExternalNetwork, "external-network", "", "Name of the external network for the router gateway (required)")
	cmd.Flags().StringVar(&opts.CIDR, "cidr", "", "IPv4 CIDR of the subnet (required)")
	cmd.Flags().StringVar(&opts.Gateway, "gateway", "", "Gateway IP inside the subnet (required)")
	cmd.Flags().StringSliceVar(&opts.DNS, "dns", nil, "DNS nameserver (repeatable or comma separated)")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "Print plain step output instead of the progress view")
	_ = cmd.MarkFlagRequired("external-network")
	_ = cmd.MarkFlagRequired("cidr")
	_ = cmd.MarkFlagRequired("gateway")

	return cmd
}
