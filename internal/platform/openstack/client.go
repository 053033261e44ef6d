package openstack

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/roles"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/users"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/rules"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"
)

// ProjectCreateOpts holds the parameters for creating a project.
type ProjectCreateOpts struct {
	Name        string
	Description string
	Enabled     bool
}

// UserCreateOpts holds the parameters for creating a user.
// Email is stored as an extra attribute of the user.
type UserCreateOpts struct {
	Name     string
	Email    string
	Password string
	Enabled  bool
}

// NetworkCreateOpts holds the parameters for creating a project network.
type NetworkCreateOpts struct {
	Name      string
	ProjectID string
}

// SubnetCreateOpts holds the parameters for creating an IPv4 subnet with DHCP.
type SubnetCreateOpts struct {
	Name           string
	NetworkID      string
	ProjectID      string
	CIDR           string
	GatewayIP      string
	DNSNameservers []string
}

// RouterCreateOpts holds the parameters for creating a router with an external gateway.
type RouterCreateOpts struct {
	Name              string
	ProjectID         string
	ExternalNetworkID string
}

// IngressRuleOpts describes a single IPv4 ingress rule.
type IngressRuleOpts struct {
	SecurityGroupID string
	ProjectID       string
	Protocol        rules.RuleProtocol
	PortMin         int
	PortMax         int
	RemoteIPPrefix  string
}

// ProjectManager defines the interface for managing projects.
type ProjectManager interface {
	CreateProject(ctx context.Context, opts ProjectCreateOpts) (*projects.Project, error)
	LookupProject(ctx context.Context, name string) Lookup[*projects.Project]
	// SetProjectProperty stores one free-form key/value pair on the project.
	SetProjectProperty(ctx context.Context, projectID, key string, value any) error
	SetProjectEnabled(ctx context.Context, projectID string, enabled bool) error
}

// UserManager defines the interface for managing users.
type UserManager interface {
	CreateUser(ctx context.Context, opts UserCreateOpts) (*users.User, error)
	LookupUser(ctx context.Context, name string) Lookup[*users.User]
	SetUserEnabled(ctx context.Context, userID string, enabled bool) error
	// SetUserPassword sends the password to Keystone as given; hashing is the backend's job.
	SetUserPassword(ctx context.Context, userID, password string) error
}

// RoleManager defines the interface for looking up and granting roles.
type RoleManager interface {
	LookupRole(ctx context.Context, name string) Lookup[*roles.Role]
	// GrantRole assigns the role to the user on the project.
	GrantRole(ctx context.Context, roleID, userID, projectID string) error
}

// NetworkManager defines the interface for managing networks, subnets and routers.
type NetworkManager interface {
	CreateNetwork(ctx context.Context, opts NetworkCreateOpts) (*networks.Network, error)
	CreateSubnet(ctx context.Context, opts SubnetCreateOpts) (*subnets.Subnet, error)
	// LookupNetwork scans all visible networks for one with the given name.
	LookupNetwork(ctx context.Context, name string) Lookup[*networks.Network]
	CreateRouter(ctx context.Context, opts RouterCreateOpts) (*routers.Router, error)
	AddRouterInterface(ctx context.Context, routerID, subnetID string) (*routers.InterfaceInfo, error)
}

// SecurityGroupManager defines the interface for managing security groups and rules.
type SecurityGroupManager interface {
	// ListSecurityGroups returns every security group visible to the session.
	ListSecurityGroups(ctx context.Context) ([]groups.SecGroup, error)
	CreateIngressRule(ctx context.Context, opts IngressRuleOpts) (*rules.SecGroupRule, error)
}

// CloudManager combines all interfaces used by the administrative workflows.
type CloudManager interface {
	ProjectManager
	UserManager
	RoleManager
	NetworkManager
	SecurityGroupManager
}
