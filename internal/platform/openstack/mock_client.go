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

// MockClient is a mock implementation of CloudManager.
// Lookups default to not found; mutations default to success.
type MockClient struct {
	// Projects
	CreateProjectFunc      func(ctx context.Context, opts ProjectCreateOpts) (*projects.Project, error)
	LookupProjectFunc      func(ctx context.Context, name string) Lookup[*projects.Project]
	SetProjectPropertyFunc func(ctx context.Context, projectID, key string, value any) error
	SetProjectEnabledFunc  func(ctx context.Context, projectID string, enabled bool) error

	// Users
	CreateUserFunc      func(ctx context.Context, opts UserCreateOpts) (*users.User, error)
	LookupUserFunc      func(ctx context.Context, name string) Lookup[*users.User]
	SetUserEnabledFunc  func(ctx context.Context, userID string, enabled bool) error
	SetUserPasswordFunc func(ctx context.Context, userID, password string) error

	// Roles
	LookupRoleFunc func(ctx context.Context, name string) Lookup[*roles.Role]
	GrantRoleFunc  func(ctx context.Context, roleID, userID, projectID string) error

	// Network
	CreateNetworkFunc      func(ctx context.Context, opts NetworkCreateOpts) (*networks.Network, error)
	CreateSubnetFunc       func(ctx context.Context, opts SubnetCreateOpts) (*subnets.Subnet, error)
	LookupNetworkFunc      func(ctx context.Context, name string) Lookup[*networks.Network]
	CreateRouterFunc       func(ctx context.Context, opts RouterCreateOpts) (*routers.Router, error)
	AddRouterInterfaceFunc func(ctx context.Context, routerID, subnetID string) (*routers.InterfaceInfo, error)

	// Security groups
	ListSecurityGroupsFunc func(ctx context.Context) ([]groups.SecGroup, error)
	CreateIngressRuleFunc  func(ctx context.Context, opts IngressRuleOpts) (*rules.SecGroupRule, error)
}

// Ensure interface compliance
var _ CloudManager = (*MockClient)(nil)

// CreateProject mocks project creation.
func (m *MockClient) CreateProject(ctx context.Context, opts ProjectCreateOpts) (*projects.Project, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, opts)
	}
	return &projects.Project{ID: "mock-project-id", Name: opts.Name, Description: opts.Description, Enabled: opts.Enabled}, nil
}

// LookupProject mocks project lookup.
func (m *MockClient) LookupProject(ctx context.Context, name string) Lookup[*projects.Project] {
	if m.LookupProjectFunc != nil {
		return m.LookupProjectFunc(ctx, name)
	}
	return NotFound[*projects.Project]()
}

// SetProjectProperty mocks a project property update.
func (m *MockClient) SetProjectProperty(ctx context.Context, projectID, key string, value any) error {
	if m.SetProjectPropertyFunc != nil {
		return m.SetProjectPropertyFunc(ctx, projectID, key, value)
	}
	return nil
}

// SetProjectEnabled mocks a project status update.
func (m *MockClient) SetProjectEnabled(ctx context.Context, projectID string, enabled bool) error {
	if m.SetProjectEnabledFunc != nil {
		return m.SetProjectEnabledFunc(ctx, projectID, enabled)
	}
	return nil
}

// CreateUser mocks user creation.
func (m *MockClient) CreateUser(ctx context.Context, opts UserCreateOpts) (*users.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, opts)
	}
	return &users.User{ID: "mock-user-id", Name: opts.Name, Enabled: opts.Enabled}, nil
}

// LookupUser mocks user lookup.
func (m *MockClient) LookupUser(ctx context.Context, name string) Lookup[*users.User] {
	if m.LookupUserFunc != nil {
		return m.LookupUserFunc(ctx, name)
	}
	return NotFound[*users.User]()
}

// SetUserEnabled mocks a user status update.
func (m *MockClient) SetUserEnabled(ctx context.Context, userID string, enabled bool) error {
	if m.SetUserEnabledFunc != nil {
		return m.SetUserEnabledFunc(ctx, userID, enabled)
	}
	return nil
}

// SetUserPassword mocks a password update.
func (m *MockClient) SetUserPassword(ctx context.Context, userID, password string) error {
	if m.SetUserPasswordFunc != nil {
		return m.SetUserPasswordFunc(ctx, userID, password)
	}
	return nil
}

// LookupRole mocks role lookup.
func (m *MockClient) LookupRole(ctx context.Context, name string) Lookup[*roles.Role] {
	if m.LookupRoleFunc != nil {
		return m.LookupRoleFunc(ctx, name)
	}
	return NotFound[*roles.Role]()
}

// GrantRole mocks a role assignment.
func (m *MockClient) GrantRole(ctx context.Context, roleID, userID, projectID string) error {
	if m.GrantRoleFunc != nil {
		return m.GrantRoleFunc(ctx, roleID, userID, projectID)
	}
	return nil
}

// CreateNetwork mocks network creation.
func (m *MockClient) CreateNetwork(ctx context.Context, opts NetworkCreateOpts) (*networks.Network, error) {
	if m.CreateNetworkFunc != nil {
		return m.CreateNetworkFunc(ctx, opts)
	}
	return &networks.Network{ID: "mock-network-id", Name: opts.Name, ProjectID: opts.ProjectID, AdminStateUp: true}, nil
}

// CreateSubnet mocks subnet creation.
func (m *MockClient) CreateSubnet(ctx context.Context, opts SubnetCreateOpts) (*subnets.Subnet, error) {
	if m.CreateSubnetFunc != nil {
		return m.CreateSubnetFunc(ctx, opts)
	}
	return &subnets.Subnet{ID: "mock-subnet-id", Name: opts.Name, NetworkID: opts.NetworkID, CIDR: opts.CIDR, GatewayIP: opts.GatewayIP}, nil
}

// LookupNetwork mocks network lookup.
func (m *MockClient) LookupNetwork(ctx context.Context, name string) Lookup[*networks.Network] {
	if m.LookupNetworkFunc != nil {
		return m.LookupNetworkFunc(ctx, name)
	}
	return NotFound[*networks.Network]()
}

// CreateRouter mocks router creation.
func (m *MockClient) CreateRouter(ctx context.Context, opts RouterCreateOpts) (*routers.Router, error) {
	if m.CreateRouterFunc != nil {
		return m.CreateRouterFunc(ctx, opts)
	}
	return &routers.Router{ID: "mock-router-id", Name: opts.Name, ProjectID: opts.ProjectID}, nil
}

// AddRouterInterface mocks attaching a subnet to a router.
func (m *MockClient) AddRouterInterface(ctx context.Context, routerID, subnetID string) (*routers.InterfaceInfo, error) {
	if m.AddRouterInterfaceFunc != nil {
		return m.AddRouterInterfaceFunc(ctx, routerID, subnetID)
	}
	return &routers.InterfaceInfo{ID: routerID, SubnetID: subnetID, PortID: "mock-port-id"}, nil
}

// ListSecurityGroups mocks listing security groups.
func (m *MockClient) ListSecurityGroups(ctx context.Context) ([]groups.SecGroup, error) {
	if m.ListSecurityGroupsFunc != nil {
		return m.ListSecurityGroupsFunc(ctx)
	}
	return nil, nil
}

// CreateIngressRule mocks rule creation.
func (m *MockClient) CreateIngressRule(ctx context.Context, opts IngressRuleOpts) (*rules.SecGroupRule, error) {
	if m.CreateIngressRuleFunc != nil {
		return m.CreateIngressRuleFunc(ctx, opts)
	}
	return &rules.SecGroupRule{ID: "mock-rule-id", SecGroupID: opts.SecurityGroupID}, nil
}
