package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/osadmin/internal/config"
	"github.com/imamik/osadmin/internal/provisioning"
	"github.com/imamik/osadmin/internal/provisioning/infrastructure"
	"github.com/imamik/osadmin/internal/ui/tui"
)

// runNetworkTUI shows workflow progress; tests replace it.
var runNetworkTUI = tui.RunNetworkTUI

// NetworkOptions holds the network init flags.
type NetworkOptions struct {
	ExternalNetwork string
	CIDR            string
	Gateway         string
	DNS             []string
	NoTUI           bool
}

// InitNetwork creates the project's private network, subnet and router.
// The request is validated before connecting to the cloud.
func InitNetwork(ctx context.Context, g Globals, project string, opts NetworkOptions) error {
	spec := config.NetworkSpec{
		ProjectName:         project,
		ExternalNetworkName: opts.ExternalNetwork,
		SubnetCIDR:          opts.CIDR,
		GatewayIP:           opts.Gateway,
		DNSNameservers:      opts.DNS,
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid network request: %w", err)
	}

	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		var (
			ledger *provisioning.Ledger
			ok     bool
		)

		useTUI := !opts.NoTUI && isInteractive()
		s.log.V(1).Info("Initializing network", "project", project, "external_network", opts.ExternalNetwork, "tui", useTUI)

		if !useTUI {
			ledger, ok = s.ops.ProvisionNetwork(ctx, spec, func(u provisioning.StepUpdate) {
				printStep(s, u)
			})
		} else {
			var err error
			ledger, ok, err = runNetworkTUI(ctx, func(ctx context.Context, l provisioning.StepListener) (*provisioning.Ledger, bool) {
				return s.ops.ProvisionNetwork(ctx, spec, l)
			}, project, opts.ExternalNetwork, opts.CIDR, infrastructure.NewProvisioner().StepNames())
			if err != nil {
				return err
			}
		}

		if !ok {
			printLeftovers(s, ledger)
		}
		return s.report(ok,
			fmt.Sprintf("network of project %q initialized", project),
			fmt.Sprintf("network of project %q could not be defined", project))
	})
}

func printStep(s *session, u provisioning.StepUpdate) {
	switch u.Status {
	case provisioning.StepDone:
		s.out.Success("[%d/%d] %s (%v)", u.Index+1, u.Total, u.Name, u.Duration.Round(time.Millisecond))
	case provisioning.StepFailed:
		s.out.Failure("[%d/%d] %s: %v", u.Index+1, u.Total, u.Name, u.Err)
	}
}

func printLeftovers(s *session, ledger *provisioning.Ledger) {
	if ledger == nil {
		return
	}
	committed := ledger.Committed()
	if len(committed) == 0 {
		return
	}
	s.out.Warn("resources left in place:")
	for _, r := range committed {
		s.out.Resource(r.Kind, r.Name, r.ID)
	}
	if n, ok := ledger.Find(infrastructure.KindNetwork); ok {
		s.out.Warn("delete network %s (%s) before running network init again", n.Name, n.ID)
	}
}

// AddSSHRule opens port 22 on the project's security group.
func AddSSHRule(ctx context.Context, g Globals, project string) error {
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		ok := s.ops.AddSSHRule(ctx, project)
		return s.report(ok,
			fmt.Sprintf("SSH access configured for project %q", project),
			fmt.Sprintf("SSH rule not added to project %q", project))
	})
}
