package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/rules"
)

// ListSecurityGroups returns all security groups visible to the session.
func (c *RealClient) ListSecurityGroups(ctx context.Context) ([]groups.SecGroup, error) {
	pages, err := groups.List(c.network, groups.ListOpts{}).AllPages(ctx)
	var list []groups.SecGroup
	if err == nil {
		list, err = groups.ExtractGroups(pages)
	}
	if err := c.observe(serviceNetwork, "security_group.list", err); err != nil {
		return nil, fmt.Errorf("failed to list security groups: %w", err)
	}
	return list, nil
}

// CreateIngressRule adds an IPv4 ingress rule to a security group.
func (c *RealClient) CreateIngressRule(ctx context.Context, opts IngressRuleOpts) (*rules.SecGroupRule, error) {
	rule, err := rules.Create(ctx, c.network, rules.CreateOpts{
		Direction:      rules.DirIngress,
		EtherType:      rules.EtherType4,
		SecGroupID:     opts.SecurityGroupID,
		ProjectID:      opts.ProjectID,
		Protocol:       opts.Protocol,
		PortRangeMin:   opts.PortMin,
		PortRangeMax:   opts.PortMax,
		RemoteIPPrefix: opts.RemoteIPPrefix,
	}).Extract()
	if err := c.observe(serviceNetwork, "security_group_rule.create", err); err != nil {
		return nil, fmt.Errorf("failed to create rule in security group %s: %w", opts.SecurityGroupID, err)
	}
	return rule, nil
}
