package config

import (
	"errors"
	"fmt"
	"net"

	"go.uber.org/multierr"
)

// NetworkSpec describes the private network topology created for a project.
type NetworkSpec struct {
	ProjectName         string
	ExternalNetworkName string
	SubnetCIDR          string
	GatewayIP           string
	DNSNameservers      []string
}

// Validate checks the request before any remote call is made.
func (s NetworkSpec) Validate() error {
	var err error

	if s.ProjectName == "" {
		err = multierr.Append(err, errors.New("project name is required"))
	}
	if s.ExternalNetworkName == "" {
		err = multierr.Append(err, errors.New("external network name is required"))
	}

	_, ipNet, cidrErr := net.ParseCIDR(s.SubnetCIDR)
	switch {
	case cidrErr != nil:
		err = multierr.Append(err, fmt.Errorf("invalid subnet CIDR %q: %w", s.SubnetCIDR, cidrErr))
		ipNet = nil
	case ipNet.IP.To4() == nil:
		err = multierr.Append(err, fmt.Errorf("only IPv4 subnets are supported, got %s", s.SubnetCIDR))
		ipNet = nil
	}

	gw := net.ParseIP(s.GatewayIP)
	switch {
	case gw == nil:
		err = multierr.Append(err, fmt.Errorf("invalid gateway IP %q", s.GatewayIP))
	case ipNet != nil && !ipNet.Contains(gw):
		err = multierr.Append(err, fmt.Errorf("gateway %s is outside subnet %s", s.GatewayIP, s.SubnetCIDR))
	case ipNet != nil && gw.Equal(ipNet.IP):
		err = multierr.Append(err, fmt.Errorf("gateway %s is the network address of %s", s.GatewayIP, s.SubnetCIDR))
	}

	for _, ns := range s.DNSNameservers {
		if net.ParseIP(ns) == nil {
			err = multierr.Append(err, fmt.Errorf("invalid DNS nameserver %q", ns))
		}
	}

	return err
}
