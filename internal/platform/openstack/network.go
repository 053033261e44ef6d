package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"

	"github.com/imamik/osadmin/internal/util/ptr"
)

// CreateNetwork creates an admin-up network owned by the project.
func (c *RealClient) CreateNetwork(ctx context.Context, opts NetworkCreateOpts) (*networks.Network, error) {
	network, err := networks.Create(ctx, c.network, networks.CreateOpts{
		Name:         opts.Name,
		ProjectID:    opts.ProjectID,
		AdminStateUp: ptr.Bool(true),
	}).Extract()
	if err := c.observe(serviceNetwork, "network.create", err); err != nil {
		return nil, fmt.Errorf("failed to create network %s: %w", opts.Name, err)
	}
	return network, nil
}

// CreateSubnet creates an IPv4 subnet with DHCP enabled.
func (c *RealClient) CreateSubnet(ctx context.Context, opts SubnetCreateOpts) (*subnets.Subnet, error) {
	subnet, err := subnets.Create(ctx, c.network, subnets.CreateOpts{
		Name:           opts.Name,
		NetworkID:      opts.NetworkID,
		ProjectID:      opts.ProjectID,
		CIDR:           opts.CIDR,
		GatewayIP:      ptr.String(opts.GatewayIP),
		IPVersion:      gophercloud.IPv4,
		EnableDHCP:     ptr.Bool(true),
		DNSNameservers: opts.DNSNameservers,
	}).Extract()
	if err := c.observe(serviceNetwork, "subnet.create", err); err != nil {
		return nil, fmt.Errorf("failed to create subnet %s: %w", opts.Name, err)
	}
	return subnet, nil
}

// LookupNetwork lists every network visible to the session and returns the
// first one with the given name.
func (c *RealClient) LookupNetwork(ctx context.Context, name string) Lookup[*networks.Network] {
	var list []networks.Network
	pages, err := networks.List(c.network, networks.ListOpts{}).AllPages(ctx)
	if err == nil {
		list, err = networks.ExtractNetworks(pages)
	}
	_ = c.observe(serviceNetwork, "network.list", err)
	return lookupFromList(list, err, name, func(n *networks.Network) string { return n.Name })
}

// CreateRouter creates an admin-up router whose gateway is the external network.
func (c *RealClient) CreateRouter(ctx context.Context, opts RouterCreateOpts) (*routers.Router, error) {
	router, err := routers.Create(ctx, c.network, routers.CreateOpts{
		Name:         opts.Name,
		ProjectID:    opts.ProjectID,
		AdminStateUp: ptr.Bool(true),
		GatewayInfo: &routers.GatewayInfo{
			NetworkID: opts.ExternalNetworkID,
		},
	}).Extract()
	if err := c.observe(serviceNetwork, "router.create", err); err != nil {
		return nil, fmt.Errorf("failed to create router %s: %w", opts.Name, err)
	}
	return router, nil
}

// AddRouterInterface attaches the subnet to the router.
func (c *RealClient) AddRouterInterface(ctx context.Context, routerID, subnetID string) (*routers.InterfaceInfo, error) {
	info, err := routers.AddInterface(ctx, c.network, routerID, routers.AddInterfaceOpts{
		SubnetID: subnetID,
	}).Extract()
	if err := c.observe(serviceNetwork, "router.add_interface", err); err != nil {
		return nil, fmt.Errorf("failed to attach subnet %s to router %s: %w", subnetID, routerID, err)
	}
	return info, nil
}
