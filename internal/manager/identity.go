package manager

import (
	"context"
	"fmt"
	"sort"

	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/roles"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/users"

	"github.com/imamik/osadmin/internal/platform/openstack"
	"github.com/imamik/osadmin/internal/provisioning"
	"github.com/imamik/osadmin/internal/util/async"
)

// CheckUsernameAvailability reports whether no user is named name.
// A failed lookup is reported as unavailable.
func (m *Manager) CheckUsernameAvailability(ctx context.Context, name string) bool {
	var available bool
	ok := m.run(ctx, OpCheckUsername, func(ctx context.Context) error {
		lookup := m.cloud.LookupUser(ctx, name)
		available = lookup.State == openstack.LookupNotFound
		return availabilityErr(lookup.State, lookup.Err, "user", name)
	})
	return ok && available
}

// CheckProjectnameAvailability reports whether no project is named name.
// A failed lookup is reported as unavailable.
func (m *Manager) CheckProjectnameAvailability(ctx context.Context, name string) bool {
	var available bool
	ok := m.run(ctx, OpCheckProjectname, func(ctx context.Context) error {
		lookup := m.cloud.LookupProject(ctx, name)
		available = lookup.State == openstack.LookupNotFound
		return availabilityErr(lookup.State, lookup.Err, "project", name)
	})
	return ok && available
}

func availabilityErr(state openstack.LookupState, err error, kind, name string) error {
	if state != openstack.LookupFailed {
		return nil
	}
	if err == nil {
		err = fmt.Errorf("lookup of %s %q did not complete", kind, name)
	}
	return fmt.Errorf("failed to check %s name %q: %w", kind, name, err)
}

// CreateProject creates the project, then sets each property in key order.
// A failing property update leaves the earlier ones in place.
func (m *Manager) CreateProject(ctx context.Context, description, name string, properties map[string]any, enabled bool) bool {
	return m.run(ctx, OpCreateProject, func(ctx context.Context) error {
		if _, err := m.cloud.CreateProject(ctx, openstack.ProjectCreateOpts{
			Name:        name,
			Description: description,
			Enabled:     enabled,
		}); err != nil {
			return fmt.Errorf("project not created: %w", err)
		}

		project, err := m.cloud.LookupProject(ctx, name).Get("project", name)
		if err != nil {
			return fmt.Errorf("project not created: %w", err)
		}

		keys := make([]string, 0, len(properties))
		for k := range properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if err := m.cloud.SetProjectProperty(ctx, project.ID, k, properties[k]); err != nil {
				return fmt.Errorf("project %s created but property %q not set: %w", name, k, err)
			}
		}
		m.observer.Printf("Project %s created (%s)", name, project.ID)
		return nil
	})
}

// CreateUser creates a user. The email is stored as an extra attribute.
func (m *Manager) CreateUser(ctx context.Context, email, name, password string, enabled bool) bool {
	return m.run(ctx, OpCreateUser, func(ctx context.Context) error {
		user, err := m.cloud.CreateUser(ctx, openstack.UserCreateOpts{
			Name:     name,
			Email:    email,
			Password: password,
			Enabled:  enabled,
		})
		if err != nil {
			return fmt.Errorf("user not created: %w", err)
		}
		m.observer.Printf("User %s created (%s)", name, user.ID)
		return nil
	})
}

// PairUserWithProject grants role to the user on the project.
// The three names are resolved concurrently and no grant is attempted unless
// all of them resolve.
func (m *Manager) PairUserWithProject(ctx context.Context, userName, projectName, roleName string) bool {
	return m.run(ctx, OpPairUserWithProject, func(ctx context.Context) error {
		var (
			user    *users.User
			project *projects.Project
			role    *roles.Role
		)
		err := async.RunParallel(ctx, []async.Task{
			{Name: "user", Func: func(ctx context.Context) (err error) {
				user, err = m.cloud.LookupUser(ctx, userName).Get("user", userName)
				return err
			}},
			{Name: "project", Func: func(ctx context.Context) (err error) {
				project, err = m.cloud.LookupProject(ctx, projectName).Get("project", projectName)
				return err
			}},
			{Name: "role", Func: func(ctx context.Context) (err error) {
				role, err = m.cloud.LookupRole(ctx, roleName).Get("role", roleName)
				return err
			}},
		})
		if err != nil {
			return fmt.Errorf("user not paired with project: %w", err)
		}

		if err := m.cloud.GrantRole(ctx, role.ID, user.ID, project.ID); err != nil {
			return fmt.Errorf("user not paired with project: %w", err)
		}
		m.observer.Printf("Granted role %s to user %s on project %s", roleName, userName, projectName)
		return nil
	})
}

// UpdateProjectStatus enables or disables the project.
func (m *Manager) UpdateProjectStatus(ctx context.Context, name string, enabled bool) bool {
	return m.run(ctx, OpUpdateProjectStatus, func(ctx context.Context) error {
		project, err := m.cloud.LookupProject(ctx, name).Get("project", name)
		if err != nil {
			return fmt.Errorf("project status not updated: %w", err)
		}
		if err := m.cloud.SetProjectEnabled(ctx, project.ID, enabled); err != nil {
			return fmt.Errorf("project status not updated: %w", err)
		}
		provisioning.LogResourceUpdated(m.observer, OpUpdateProjectStatus, "project", name, project.ID)
		return nil
	})
}

// UpdateUserStatus enables or disables the user.
func (m *Manager) UpdateUserStatus(ctx context.Context, name string, enabled bool) bool {
	return m.run(ctx, OpUpdateUserStatus, func(ctx context.Context) error {
		user, err := m.cloud.LookupUser(ctx, name).Get("user", name)
		if err != nil {
			return fmt.Errorf("user status not updated: %w", err)
		}
		if err := m.cloud.SetUserEnabled(ctx, user.ID, enabled); err != nil {
			return fmt.Errorf("user status not updated: %w", err)
		}
		provisioning.LogResourceUpdated(m.observer, OpUpdateUserStatus, "user", name, user.ID)
		return nil
	})
}

// UpdateUserPassword replaces the user's password.
func (m *Manager) UpdateUserPassword(ctx context.Context, name, password string) bool {
	return m.run(ctx, OpUpdateUserPassword, func(ctx context.Context) error {
		user, err := m.cloud.LookupUser(ctx, name).Get("user", name)
		if err != nil {
			return fmt.Errorf("user password not updated: %w", err)
		}
		if err := m.cloud.SetUserPassword(ctx, user.ID, password); err != nil {
			return fmt.Errorf("user password not updated: %w", err)
		}
		provisioning.LogResourceUpdated(m.observer, OpUpdateUserPassword, "user", name, user.ID)
		return nil
	})
}
