package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/osadmin/internal/config"
	"github.com/imamik/osadmin/internal/provisioning"
)

// MockOperations is a testify mock of the administrative operations a CLI
// handler calls on manager.Manager.
type MockOperations struct {
	mock.Mock
}

// CheckUsernameAvailability mocks the username check.
func (m *MockOperations) CheckUsernameAvailability(ctx context.Context, name string) bool {
	return m.Called(ctx, name).Bool(0)
}

// CheckProjectnameAvailability mocks the project name check.
func (m *MockOperations) CheckProjectnameAvailability(ctx context.Context, name string) bool {
	return m.Called(ctx, name).Bool(0)
}

// CreateProject mocks project creation.
func (m *MockOperations) CreateProject(ctx context.Context, description, name string, properties map[string]any, enabled bool) bool {
	return m.Called(ctx, description, name, properties, enabled).Bool(0)
}

// CreateUser mocks user creation.
func (m *MockOperations) CreateUser(ctx context.Context, email, name, password string, enabled bool) bool {
	return m.Called(ctx, email, name, password, enabled).Bool(0)
}

// PairUserWithProject mocks the role grant.
func (m *MockOperations) PairUserWithProject(ctx context.Context, userName, projectName, roleName string) bool {
	return m.Called(ctx, userName, projectName, roleName).Bool(0)
}

// UpdateProjectStatus mocks enabling or disabling a project.
func (m *MockOperations) UpdateProjectStatus(ctx context.Context, name string, enabled bool) bool {
	return m.Called(ctx, name, enabled).Bool(0)
}

// UpdateUserStatus mocks enabling or disabling a user.
func (m *MockOperations) UpdateUserStatus(ctx context.Context, name string, enabled bool) bool {
	return m.Called(ctx, name, enabled).Bool(0)
}

// UpdateUserPassword mocks a password change.
func (m *MockOperations) UpdateUserPassword(ctx context.Context, name, password string) bool {
	return m.Called(ctx, name, password).Bool(0)
}

// ProvisionNetwork mocks the network workflow. Listeners registered on the
// call receive the []provisioning.StepUpdate given as an optional third return value.
func (m *MockOperations) ProvisionNetwork(ctx context.Context, spec config.NetworkSpec, listeners ...provisioning.StepListener) (*provisioning.Ledger, bool) {
	args := m.Called(ctx, spec)
	if len(args) > 2 {
		updates, _ := args.Get(2).([]provisioning.StepUpdate)
		for _, u := range updates {
			for _, l := range listeners {
				l(u)
			}
		}
	}
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*provisioning.Ledger), args.Bool(1)
}

// AddSSHRule mocks the SSH rule operation.
func (m *MockOperations) AddSSHRule(ctx context.Context, projectName string) bool {
	return m.Called(ctx, projectName).Bool(0)
}
