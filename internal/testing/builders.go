package testing

import "github.com/imamik/osadmin/internal/config"

// NetworkSpecBuilder provides a fluent interface for constructing network requests.
// Each method returns a new builder (immutable) for chaining.
type NetworkSpecBuilder struct {
	spec config.NetworkSpec
}

// NewNetworkSpecBuilder creates a builder with a valid request for project proj1.
func NewNetworkSpecBuilder() *NetworkSpecBuilder {
	return &NetworkSpecBuilder{
		spec: config.NetworkSpec{
			ProjectName:         "proj1",
			ExternalNetworkName: "public",
			SubnetCIDR:          "192.168.10.0/24",
			GatewayIP:           "192.168.10.1",
			DNSNameservers:      []string{"8.8.8.8", "8.8.4.4"},
		},
	}
}

// WithProject sets the project name.
func (b *NetworkSpecBuilder) WithProject(name string) *NetworkSpecBuilder {
	nb := b.clone()
	nb.spec.ProjectName = name
	return nb
}

// WithExternalNetwork sets the external network name.
func (b *NetworkSpecBuilder) WithExternalNetwork(name string) *NetworkSpecBuilder {
	nb := b.clone()
	nb.spec.ExternalNetworkName = name
	return nb
}

// WithSubnet sets the subnet CIDR and gateway.
func (b *NetworkSpecBuilder) WithSubnet(cidr, gateway string) *NetworkSpecBuilder {
	nb := b.clone()
	nb.spec.SubnetCIDR = cidr
	nb.spec.GatewayIP = gateway
	return nb
}

// WithDNS replaces the DNS nameservers.
func (b *NetworkSpecBuilder) WithDNS(servers ...string) *NetworkSpecBuilder {
	nb := b.clone()
	nb.spec.DNSNameservers = append([]string(nil), servers...)
	return nb
}

// Build returns the request.
func (b *NetworkSpecBuilder) Build() config.NetworkSpec {
	return b.clone().spec
}

func (b *NetworkSpecBuilder) clone() *NetworkSpecBuilder {
	spec := b.spec
	spec.DNSNameservers = append([]string(nil), b.spec.DNSNameservers...)
	return &NetworkSpecBuilder{spec: spec}
}
