package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/roles"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/users"

	"github.com/imamik/osadmin/internal/util/ptr"
)

// CreateProject creates a project.
func (c *RealClient) CreateProject(ctx context.Context, opts ProjectCreateOpts) (*projects.Project, error) {
	project, err := projects.Create(ctx, c.identity, projects.CreateOpts{
		Name:        opts.Name,
		Description: opts.Description,
		Enabled:     ptr.Bool(opts.Enabled),
	}).Extract()
	if err := c.observe(serviceIdentity, "project.create", err); err != nil {
		return nil, fmt.Errorf("failed to create project %s: %w", opts.Name, err)
	}
	return project, nil
}

// LookupProject resolves a project by name.
func (c *RealClient) LookupProject(ctx context.Context, name string) Lookup[*projects.Project] {
	var list []projects.Project
	pages, err := projects.List(c.identity, projects.ListOpts{Name: name}).AllPages(ctx)
	if err == nil {
		list, err = projects.ExtractProjects(pages)
	}
	_ = c.observe(serviceIdentity, "project.list", err)
	return lookupFromList(list, err, name, func(p *projects.Project) string { return p.Name })
}

// SetProjectProperty stores key=value on the project.
func (c *RealClient) SetProjectProperty(ctx context.Context, projectID, key string, value any) error {
	_, err := projects.Update(ctx, c.identity, projectID, projects.UpdateOpts{
		Extra: map[string]any{key: value},
	}).Extract()
	if err := c.observe(serviceIdentity, "project.update", err); err != nil {
		return fmt.Errorf("failed to set property %s on project %s: %w", key, projectID, err)
	}
	return nil
}

// SetProjectEnabled enables or disables a project.
func (c *RealClient) SetProjectEnabled(ctx context.Context, projectID string, enabled bool) error {
	_, err := projects.Update(ctx, c.identity, projectID, projects.UpdateOpts{
		Enabled: ptr.Bool(enabled),
	}).Extract()
	if err := c.observe(serviceIdentity, "project.update", err); err != nil {
		return fmt.Errorf("failed to update project %s: %w", projectID, err)
	}
	return nil
}

// CreateUser creates a user.
func (c *RealClient) CreateUser(ctx context.Context, opts UserCreateOpts) (*users.User, error) {
	createOpts := users.CreateOpts{
		Name:     opts.Name,
		Password: opts.Password,
		Enabled:  ptr.Bool(opts.Enabled),
	}
	if opts.Email != "" {
		createOpts.Extra = map[string]any{"email": opts.Email}
	}

	user, err := users.Create(ctx, c.identity, createOpts).Extract()
	if err := c.observe(serviceIdentity, "user.create", err); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", opts.Name, err)
	}
	return user, nil
}

// LookupUser resolves a user by name.
func (c *RealClient) LookupUser(ctx context.Context, name string) Lookup[*users.User] {
	var list []users.User
	pages, err := users.List(c.identity, users.ListOpts{Name: name}).AllPages(ctx)
	if err == nil {
		list, err = users.ExtractUsers(pages)
	}
	_ = c.observe(serviceIdentity, "user.list", err)
	return lookupFromList(list, err, name, func(u *users.User) string { return u.Name })
}

// SetUserEnabled enables or disables a user.
func (c *RealClient) SetUserEnabled(ctx context.Context, userID string, enabled bool) error {
	_, err := users.Update(ctx, c.identity, userID, users.UpdateOpts{
		Enabled: ptr.Bool(enabled),
	}).Extract()
	if err := c.observe(serviceIdentity, "user.update", err); err != nil {
		return fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return nil
}

// SetUserPassword replaces a user's password.
func (c *RealClient) SetUserPassword(ctx context.Context, userID, password string) error {
	_, err := users.Update(ctx, c.identity, userID, users.UpdateOpts{
		Password: password,
	}).Extract()
	if err := c.observe(serviceIdentity, "user.update", err); err != nil {
		return fmt.Errorf("failed to update password of user %s: %w", userID, err)
	}
	return nil
}

// LookupRole resolves a role by name.
func (c *RealClient) LookupRole(ctx context.Context, name string) Lookup[*roles.Role] {
	var list []roles.Role
	pages, err := roles.List(c.identity, roles.ListOpts{Name: name}).AllPages(ctx)
	if err == nil {
		list, err = roles.ExtractRoles(pages)
	}
	_ = c.observe(serviceIdentity, "role.list", err)
	return lookupFromList(list, err, name, func(r *roles.Role) string { return r.Name })
}

// GrantRole assigns a role to a user on a project.
func (c *RealClient) GrantRole(ctx context.Context, roleID, userID, projectID string) error {
	err := roles.Assign(ctx, c.identity, roleID, roles.AssignOpts{
		UserID:    userID,
		ProjectID: projectID,
	}).ExtractErr()
	if err := c.observe(serviceIdentity, "role.assign", err); err != nil {
		return fmt.Errorf("failed to grant role %s to user %s on project %s: %w", roleID, userID, projectID, err)
	}
	return nil
}
