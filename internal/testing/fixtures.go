package testing

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/roles"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/users"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/rules"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"

	"github.com/imamik/osadmin/internal/platform/openstack"
)

// Grant is one role assignment made through the fixture.
type Grant struct {
	RoleID    string
	UserID    string
	ProjectID string
}

// CloudFixture is an in-memory Keystone and Neutron backend.
// Creating a project or user whose name is taken answers 409 Conflict.
type CloudFixture struct {
	mock *openstack.MockClient

	mu         sync.Mutex
	nextID     int
	projects   []projects.Project
	users      []users.User
	passwords  map[string]string
	roles      []roles.Role
	grants     []Grant
	networks   []networks.Network
	subnets    []subnets.Subnet
	routers    []routers.Router
	interfaces []routers.InterfaceInfo
	groups     []groups.SecGroup
	rules      []rules.SecGroupRule
	calls      map[string]int
	failures   map[string]error
	propFails  map[string]error
}

// NewCloudFixture creates an empty backend with every MockClient function wired to it.
func NewCloudFixture() *CloudFixture {
	f := &CloudFixture{
		mock:      &openstack.MockClient{},
		passwords: make(map[string]string),
		calls:     make(map[string]int),
		failures:  make(map[string]error),
		propFails: make(map[string]error),
	}
	f.wire()
	return f
}

// Mock returns the MockClient backed by this fixture.
func (f *CloudFixture) Mock() *openstack.MockClient {
	return f.mock
}

// FailOn makes every later call of the named MockClient method return err.
func (f *CloudFixture) FailOn(call string, err error) *CloudFixture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[call] = err
	return f
}

// FailOnProperty makes SetProjectProperty fail for key only.
func (f *CloudFixture) FailOnProperty(key string, err error) *CloudFixture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.propFails[key] = err
	return f
}

// WithProject seeds an enabled project and returns its id.
func (f *CloudFixture) WithProject(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := projects.Project{ID: f.id("project"), Name: name, Enabled: true, Extra: map[string]any{}}
	f.projects = append(f.projects, p)
	return p.ID
}

// WithUser seeds an enabled user and returns its id.
func (f *CloudFixture) WithUser(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := users.User{ID: f.id("user"), Name: name, Enabled: true, Extra: map[string]any{}}
	f.users = append(f.users, u)
	return u.ID
}

// WithRole seeds a role and returns its id.
func (f *CloudFixture) WithRole(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := roles.Role{ID: f.id("role"), Name: name}
	f.roles = append(f.roles, r)
	return r.ID
}

// WithExternalNetwork seeds a shared external network and returns its id.
func (f *CloudFixture) WithExternalNetwork(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := networks.Network{ID: f.id("network"), Name: name, AdminStateUp: true, Shared: true}
	f.networks = append(f.networks, n)
	return n.ID
}

// WithSecurityGroup seeds a security group owned by projectID and returns its id.
func (f *CloudFixture) WithSecurityGroup(name, projectID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := groups.SecGroup{ID: f.id("secgroup"), Name: name, ProjectID: projectID, TenantID: projectID}
	f.groups = append(f.groups, g)
	return g.ID
}

// Project returns a copy of the named project.
func (f *CloudFixture) Project(name string) (projects.Project, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.projectIndex(name); i >= 0 {
		return f.projects[i], true
	}
	return projects.Project{}, false
}

// User returns a copy of the named user.
func (f *CloudFixture) User(name string) (users.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.userIndex(name); i >= 0 {
		return f.users[i], true
	}
	return users.User{}, false
}

// Password returns the last password stored for the named user.
func (f *CloudFixture) Password(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.userIndex(name); i >= 0 {
		return f.passwords[f.users[i].ID]
	}
	return ""
}

// Grants returns every role assignment made.
func (f *CloudFixture) Grants() []Grant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Grant(nil), f.grants...)
}

// Networks returns every network, seeded ones included.
func (f *CloudFixture) Networks() []networks.Network {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]networks.Network(nil), f.networks...)
}

// Subnets returns every subnet created.
func (f *CloudFixture) Subnets() []subnets.Subnet {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]subnets.Subnet(nil), f.subnets...)
}

// Routers returns every router created.
func (f *CloudFixture) Routers() []routers.Router {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]routers.Router(nil), f.routers...)
}

// RouterInterfaces returns every router interface added.
func (f *CloudFixture) RouterInterfaces() []routers.InterfaceInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]routers.InterfaceInfo(nil), f.interfaces...)
}

// Rules returns every security group rule created.
func (f *CloudFixture) Rules() []rules.SecGroupRule {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]rules.SecGroupRule(nil), f.rules...)
}

// Calls returns how many times the named MockClient method was invoked.
func (f *CloudFixture) Calls(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[call]
}

// Conflict returns the error Keystone answers for a duplicate name.
func Conflict(kind, name string) error {
	return gophercloud.ErrUnexpectedResponseCode{
		Method:   http.MethodPost,
		Expected: []int{http.StatusCreated},
		Actual:   http.StatusConflict,
		Body:     []byte(fmt.Sprintf(`{"error":{"code":409,"message":"Duplicate entry found with name %s at %s"}}`, name, kind)),
	}
}

// ServerError returns a generic 500 response error.
func ServerError() error {
	return gophercloud.ErrUnexpectedResponseCode{
		Method:   http.MethodGet,
		Expected: []int{http.StatusOK},
		Actual:   http.StatusInternalServerError,
	}
}

// id must be called with f.mu held.
func (f *CloudFixture) id(kind string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", kind, f.nextID)
}

// enter counts the call and returns any injected failure. Holds f.mu on return.
func (f *CloudFixture) enter(call string) error {
	f.mu.Lock()
	f.calls[call]++
	return f.failures[call]
}

func (f *CloudFixture) projectIndex(name string) int {
	for i := range f.projects {
		if f.projects[i].Name == name {
			return i
		}
	}
	return -1
}

func (f *CloudFixture) projectByID(id string) int {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *CloudFixture) userIndex(name string) int {
	for i := range f.users {
		if f.users[i].Name == name {
			return i
		}
	}
	return -1
}

func (f *CloudFixture) userByID(id string) int {
	for i := range f.users {
		if f.users[i].ID == id {
			return i
		}
	}
	return -1
}

func notFoundError() error {
	return gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusNotFound, Expected: []int{http.StatusOK}}
}

func (f *CloudFixture) wire() {
	m := f.mock

	m.CreateProjectFunc = func(_ context.Context, opts openstack.ProjectCreateOpts) (*projects.Project, error) {
		err := f.enter("CreateProject")
		defer f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		if f.projectIndex(opts.Name) >= 0 {
			return nil, Conflict("project", opts.Name)
		}
		p := projects.Project{ID: f.id("project"), Name: opts.Name, Description: opts.Description, Enabled: opts.Enabled, Extra: map[string]any{}}
		f.projects = append(f.projects, p)
		return &p, nil
	}
	m.LookupProjectFunc = func(_ context.Context, name string) openstack.Lookup[*projects.Project] {
		err := f.enter("LookupProject")
		defer f.mu.Unlock()
		if err != nil {
			return openstack.Failed[*projects.Project](err)
		}
		if i := f.projectIndex(name); i >= 0 {
			p := f.projects[i]
			return openstack.Found(&p)
		}
		return openstack.NotFound[*projects.Project]()
	}
	m.SetProjectPropertyFunc = func(_ context.Context, projectID, key string, value any) error {
		err := f.enter("SetProjectProperty")
		defer f.mu.Unlock()
		if err != nil {
			return err
		}
		if err := f.propFails[key]; err != nil {
			return err
		}
		i := f.projectByID(projectID)
		if i < 0 {
			return notFoundError()
		}
		f.projects[i].Extra[key] = value
		return nil
	}
	m.SetProjectEnabledFunc = func(_ context.Context, projectID string, enabled bool) error {
		err := f.enter("SetProjectEnabled")
		defer f.mu.Unlock()
		if err != nil {
			return err
		}
		i := f.projectByID(projectID)
		if i < 0 {
			return notFoundError()
		}
		f.projects[i].Enabled = enabled
		return nil
	}

	m.CreateUserFunc = func(_ context.Context, opts openstack.UserCreateOpts) (*users.User, error) {
		err := f.enter("CreateUser")
		defer f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		if f.userIndex(opts.Name) >= 0 {
			return nil, Conflict("user", opts.Name)
		}
		u := users.User{ID: f.id("user"), Name: opts.Name, Enabled: opts.Enabled, Extra: map[string]any{}}
		if opts.Email != "" {
			u.Extra["email"] = opts.Email
		}
		f.users = append(f.users, u)
		f.passwords[u.ID] = opts.Password
		return &u, nil
	}
	m.LookupUserFunc = func(_ context.Context, name string) openstack.Lookup[*users.User] {
		err := f.enter("LookupUser")
		defer f.mu.Unlock()
		if err != nil {
			return openstack.Failed[*users.User](err)
		}
		if i := f.userIndex(name); i >= 0 {
			u := f.users[i]
			return openstack.Found(&u)
		}
		return openstack.NotFound[*users.User]()
	}
	m.SetUserEnabledFunc = func(_ context.Context, userID string, enabled bool) error {
		err := f.enter("SetUserEnabled")
		defer f.mu.Unlock()
		if err != nil {
			return err
		}
		i := f.userByID(userID)
		if i < 0 {
			return notFoundError()
		}
		f.users[i].Enabled = enabled
		return nil
	}
	m.SetUserPasswordFunc = func(_ context.Context, userID, password string) error {
		err := f.enter("SetUserPassword")
		defer f.mu.Unlock()
		if err != nil {
			return err
		}
		if f.userByID(userID) < 0 {
			return notFoundError()
		}
		f.passwords[userID] = password
		return nil
	}

	m.LookupRoleFunc = func(_ context.Context, name string) openstack.Lookup[*roles.Role] {
		err := f.enter("LookupRole")
		defer f.mu.Unlock()
		if err != nil {
			return openstack.Failed[*roles.Role](err)
		}
		for i := range f.roles {
			if f.roles[i].Name == name {
				r := f.roles[i]
				return openstack.Found(&r)
			}
		}
		return openstack.NotFound[*roles.Role]()
	}
	m.GrantRoleFunc = func(_ context.Context, roleID, userID, projectID string) error {
		err := f.enter("GrantRole")
		defer f.mu.Unlock()
		if err != nil {
			return err
		}
		f.grants = append(f.grants, Grant{RoleID: roleID, UserID: userID, ProjectID: projectID})
		return nil
	}

	m.CreateNetworkFunc = func(_ context.Context, opts openstack.NetworkCreateOpts) (*networks.Network, error) {
		err := f.enter("CreateNetwork")
		defer f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		n := networks.Network{ID: f.id("network"), Name: opts.Name, ProjectID: opts.ProjectID, TenantID: opts.ProjectID, AdminStateUp: true}
		f.networks = append(f.networks, n)
		return &n, nil
	}
	m.CreateSubnetFunc = func(_ context.Context, opts openstack.SubnetCreateOpts) (*subnets.Subnet, error) {
		err := f.enter("CreateSubnet")
		defer f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		s := subnets.Subnet{
			ID:             f.id("subnet"),
			Name:           opts.Name,
			NetworkID:      opts.NetworkID,
			ProjectID:      opts.ProjectID,
			CIDR:           opts.CIDR,
			GatewayIP:      opts.GatewayIP,
			DNSNameservers: append([]string(nil), opts.DNSNameservers...),
			IPVersion:      4,
			EnableDHCP:     true,
		}
		f.subnets = append(f.subnets, s)
		return &s, nil
	}
	m.LookupNetworkFunc = func(_ context.Context, name string) openstack.Lookup[*networks.Network] {
		err := f.enter("LookupNetwork")
		defer f.mu.Unlock()
		if err != nil {
			return openstack.Failed[*networks.Network](err)
		}
		for i := range f.networks {
			if f.networks[i].Name == name {
				n := f.networks[i]
				return openstack.Found(&n)
			}
		}
		return openstack.NotFound[*networks.Network]()
	}
	m.CreateRouterFunc = func(_ context.Context, opts openstack.RouterCreateOpts) (*routers.Router, error) {
		err := f.enter("CreateRouter")
		defer f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		r := routers.Router{
			ID:           f.id("router"),
			Name:         opts.Name,
			ProjectID:    opts.ProjectID,
			AdminStateUp: true,
			GatewayInfo:  routers.GatewayInfo{NetworkID: opts.ExternalNetworkID},
		}
		f.routers = append(f.routers, r)
		return &r, nil
	}
	m.AddRouterInterfaceFunc = func(_ context.Context, routerID, subnetID string) (*routers.InterfaceInfo, error) {
		err := f.enter("AddRouterInterface")
		defer f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		info := routers.InterfaceInfo{ID: routerID, SubnetID: subnetID, PortID: f.id("port")}
		f.interfaces = append(f.interfaces, info)
		return &info, nil
	}

	m.ListSecurityGroupsFunc = func(_ context.Context) ([]groups.SecGroup, error) {
		err := f.enter("ListSecurityGroups")
		defer f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return append([]groups.SecGroup(nil), f.groups...), nil
	}
	m.CreateIngressRuleFunc = func(_ context.Context, opts openstack.IngressRuleOpts) (*rules.SecGroupRule, error) {
		err := f.enter("CreateIngressRule")
		defer f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		r := rules.SecGroupRule{
			ID:             f.id("rule"),
			Direction:      string(rules.DirIngress),
			EtherType:      string(rules.EtherType4),
			SecGroupID:     opts.SecurityGroupID,
			PortRangeMin:   opts.PortMin,
			PortRangeMax:   opts.PortMax,
			Protocol:       string(opts.Protocol),
			RemoteIPPrefix: opts.RemoteIPPrefix,
			ProjectID:      opts.ProjectID,
		}
		f.rules = append(f.rules, r)
		return &r, nil
	}
}

// ForbiddenError returns the error gophercloud reports for a 403 response.
func ForbiddenError() error {
	return gophercloud.ErrUnexpectedResponseCode{
		Method:   http.MethodPut,
		Expected: []int{http.StatusNoContent},
		Actual:   http.StatusForbidden,
	}
}
