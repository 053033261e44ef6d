package infrastructure

import (
	"fmt"

	"github.com/imamik/osadmin/internal/platform/openstack"
	"github.com/imamik/osadmin/internal/provisioning"
)

// ResolveProject looks up the target project by name.
func (p *Provisioner) ResolveProject(ctx *provisioning.Context) error {
	project, err := ctx.Cloud.LookupProject(ctx, ctx.Network.ProjectName).Get("project", ctx.Network.ProjectName)
	if err != nil {
		return err
	}
	ctx.State.ProjectID = project.ID
	ctx.Observer.Printf("[%s] Using project %s (%s)", StepResolveProject, project.Name, project.ID)
	return nil
}

// CreateNetwork creates the project's private network.
func (p *Provisioner) CreateNetwork(ctx *provisioning.Context) error {
	provisioning.LogResourceCreating(ctx.Observer, StepCreateNetwork, KindNetwork, NetworkName)

	network, err := ctx.Cloud.CreateNetwork(ctx, openstack.NetworkCreateOpts{
		Name:      NetworkName,
		ProjectID: ctx.State.ProjectID,
	})
	if err != nil {
		return provisioning.ResourceFailed(KindNetwork, NetworkName, err)
	}

	ctx.State.NetworkID = network.ID
	ctx.Ledger.Record(StepCreateNetwork, KindNetwork, NetworkName, network.ID)
	provisioning.LogResourceCreated(ctx.Observer, StepCreateNetwork, KindNetwork, NetworkName, network.ID)
	return nil
}

// CreateSubnet creates the IPv4 subnet inside the private network.
func (p *Provisioner) CreateSubnet(ctx *provisioning.Context) error {
	provisioning.LogResourceCreating(ctx.Observer, StepCreateSubnet, KindSubnet, SubnetName)

	subnet, err := ctx.Cloud.CreateSubnet(ctx, openstack.SubnetCreateOpts{
		Name:           SubnetName,
		NetworkID:      ctx.State.NetworkID,
		ProjectID:      ctx.State.ProjectID,
		CIDR:           ctx.Network.SubnetCIDR,
		GatewayIP:      ctx.Network.GatewayIP,
		DNSNameservers: ctx.Network.DNSNameservers,
	})
	if err != nil {
		return provisioning.ResourceFailed(KindSubnet, SubnetName, err)
	}

	ctx.State.SubnetID = subnet.ID
	ctx.Ledger.Record(StepCreateSubnet, KindSubnet, SubnetName, subnet.ID)
	provisioning.LogResourceCreated(ctx.Observer, StepCreateSubnet, KindSubnet, SubnetName, subnet.ID)
	return nil
}

// CreateRouter resolves the external network and creates the project router
// with its gateway on that network.
func (p *Provisioner) CreateRouter(ctx *provisioning.Context) error {
	name := ctx.Network.ExternalNetworkName
	lookup := ctx.Cloud.LookupNetwork(ctx, name)
	switch lookup.State {
	case openstack.LookupNotFound:
		return fmt.Errorf("%w: %q", openstack.ErrExternalNetworkNotFound, name)
	case openstack.LookupFailed:
		_, err := lookup.Get("external network", name)
		return err
	}
	ctx.State.ExternalNetworkID = lookup.Resource.ID

	provisioning.LogResourceCreating(ctx.Observer, StepCreateRouter, KindRouter, RouterName)

	router, err := ctx.Cloud.CreateRouter(ctx, openstack.RouterCreateOpts{
		Name:              RouterName,
		ProjectID:         ctx.State.ProjectID,
		ExternalNetworkID: ctx.State.ExternalNetworkID,
	})
	if err != nil {
		return provisioning.ResourceFailed(KindRouter, RouterName, err)
	}

	ctx.State.RouterID = router.ID
	ctx.Ledger.Record(StepCreateRouter, KindRouter, RouterName, router.ID)
	provisioning.LogResourceCreated(ctx.Observer, StepCreateRouter, KindRouter, RouterName, router.ID)
	return nil
}

// AttachSubnet adds the subnet as an interface of the router.
func (p *Provisioner) AttachSubnet(ctx *provisioning.Context) error {
	info, err := ctx.Cloud.AddRouterInterface(ctx, ctx.State.RouterID, ctx.State.SubnetID)
	if err != nil {
		return provisioning.ResourceFailed(KindRouterInterface, RouterName, err)
	}

	ctx.State.RouterPortID = info.PortID
	ctx.Ledger.Record(StepAttachSubnet, KindRouterInterface, RouterName, info.PortID)
	provisioning.LogResourceCreated(ctx.Observer, StepAttachSubnet, KindRouterInterface, RouterName, info.PortID)
	return nil
}
