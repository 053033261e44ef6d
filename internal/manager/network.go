package manager

import (
	"context"
	"fmt"

	"github.com/imamik/osadmin/internal/config"
	"github.com/imamik/osadmin/internal/provisioning"
	"github.com/imamik/osadmin/internal/provisioning/infrastructure"
)

// InitNetwork creates the private network, subnet and router of a project and
// connects the router to the named external network.
func (m *Manager) InitNetwork(ctx context.Context, projectName, externalNetworkName string, dnsNameservers []string, subnetCIDR, gatewayIP string) bool {
	_, ok := m.ProvisionNetwork(ctx, config.NetworkSpec{
		ProjectName:         projectName,
		ExternalNetworkName: externalNetworkName,
		SubnetCIDR:          subnetCIDR,
		GatewayIP:           gatewayIP,
		DNSNameservers:      dnsNameservers,
	})
	return ok
}

// ProvisionNetwork runs the network workflow for spec and returns its ledger.
// On failure the ledger lists the steps that completed and the resources still
// present on the cloud. An invalid spec fails before any remote call.
func (m *Manager) ProvisionNetwork(ctx context.Context, spec config.NetworkSpec, listeners ...provisioning.StepListener) (*provisioning.Ledger, bool) {
	observer := m.observer.WithFields(map[string]string{"project": spec.ProjectName})
	pCtx := provisioning.NewContext(ctx, spec, m.cloud, observer)

	ok := m.run(ctx, OpInitNetwork, func(context.Context) error {
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("invalid network request: %w", err)
		}
		if err := m.network.Provision(pCtx, listeners...); err != nil {
			return fmt.Errorf("project's initial network could not be defined: %w", err)
		}
		return nil
	})

	if !ok {
		for _, r := range pCtx.Ledger.Committed() {
			observer.Event(provisioning.Event{
				Type:     provisioning.EventWarning,
				Step:     r.Step,
				Resource: r.Name,
				Message:  fmt.Sprintf("%s left in place after failure", r.Kind),
				Fields:   map[string]string{"id": r.ID, "type": r.Kind},
			})
		}
	}
	return pCtx.Ledger, ok
}

// AddSSHRule opens TCP port 22 from 0.0.0.0/0 on the project's security group.
// A project without a security group succeeds with nothing created.
func (m *Manager) AddSSHRule(ctx context.Context, projectName string) bool {
	return m.run(ctx, OpAddSSHRule, func(ctx context.Context) error {
		if _, err := infrastructure.ProvisionSSHRule(ctx, m.cloud, m.observer, projectName); err != nil {
			return fmt.Errorf("SSH rule not added: %w", err)
		}
		return nil
	})
}
