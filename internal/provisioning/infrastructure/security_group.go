package infrastructure

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/rules"

	"github.com/imamik/osadmin/internal/platform/openstack"
	"github.com/imamik/osadmin/internal/provisioning"
)

const stepSSHRule = "add-ssh-rule"

// SSH ingress rule parameters.
const (
	SSHPort         = 22
	SSHRemotePrefix = "0.0.0.0/0"
)

// ProvisionSSHRule opens TCP port 22 from anywhere on the project's security group.
// It returns a nil rule and no error when the project owns no security group.
func ProvisionSSHRule(ctx context.Context, cloud openstack.CloudManager, observer provisioning.Observer, projectName string) (*rules.SecGroupRule, error) {
	project, err := cloud.LookupProject(ctx, projectName).Get("project", projectName)
	if err != nil {
		return nil, err
	}

	list, err := cloud.ListSecurityGroups(ctx)
	if err != nil {
		return nil, err
	}

	group := ownedGroup(list, project.ID)
	if group == nil {
		provisioning.LogWarning(observer, stepSSHRule,
			fmt.Sprintf("project %s owns no security group, no rule created", projectName))
		return nil, nil
	}

	provisioning.LogResourceCreating(observer, stepSSHRule, "security-group-rule", group.Name)
	rule, err := cloud.CreateIngressRule(ctx, openstack.IngressRuleOpts{
		SecurityGroupID: group.ID,
		ProjectID:       project.ID,
		Protocol:        rules.ProtocolTCP,
		PortMin:         SSHPort,
		PortMax:         SSHPort,
		RemoteIPPrefix:  SSHRemotePrefix,
	})
	if err != nil {
		return nil, provisioning.ResourceFailed("security-group-rule", group.Name, err)
	}
	provisioning.LogResourceCreated(observer, stepSSHRule, "security-group-rule", group.Name, rule.ID)
	return rule, nil
}

// ownedGroup returns the last group owned by projectID, or nil.
func ownedGroup(list []groups.SecGroup, projectID string) *groups.SecGroup {
	var match *groups.SecGroup
	for i := range list {
		owner := list[i].ProjectID
		if owner == "" {
			owner = list[i].TenantID
		}
		if owner == projectID {
			match = &list[i]
		}
	}
	return match
}
