package manager

import (
	"context"
	"time"

	"github.com/imamik/osadmin/internal/metrics"
	"github.com/imamik/osadmin/internal/platform/openstack"
	"github.com/imamik/osadmin/internal/provisioning"
	"github.com/imamik/osadmin/internal/provisioning/infrastructure"
)

// Operation names used for logging and metrics.
const (
	OpCheckUsername       = "check-username"
	OpCheckProjectname    = "check-projectname"
	OpCreateProject       = "create-project"
	OpCreateUser          = "create-user"
	OpPairUserWithProject = "pair-user-with-project"
	OpUpdateProjectStatus = "update-project-status"
	OpUpdateUserStatus    = "update-user-status"
	OpUpdateUserPassword  = "update-user-password"
	OpInitNetwork         = "init-network"
	OpAddSSHRule          = "add-ssh-rule"
)

// Manager runs administrative operations against one cloud.
type Manager struct {
	cloud    openstack.CloudManager
	observer provisioning.Observer
	recorder *metrics.Recorder
	network  *infrastructure.Provisioner
}

// Option configures a Manager.
type Option func(*Manager)

// WithObserver sets where failures and progress are reported.
func WithObserver(o provisioning.Observer) Option {
	return func(m *Manager) {
		m.observer = o
	}
}

// WithRecorder counts every operation on r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(m *Manager) {
		m.recorder = r
	}
}

// New creates a Manager over cloud. Without WithObserver, events are discarded.
func New(cloud openstack.CloudManager, opts ...Option) *Manager {
	m := &Manager{
		cloud:   cloud,
		network: infrastructure.NewProvisioner(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.observer == nil {
		m.observer = provisioning.NewDiscardObserver()
	}
	return m
}

// run executes fn and turns its error into the success flag.
func (m *Manager) run(ctx context.Context, operation string, fn func(context.Context) error) bool {
	start := time.Now()
	err := fn(ctx)
	m.recorder.ObserveOperation(operation, err == nil, time.Since(start))
	if err != nil {
		provisioning.LogOperationFailed(m.observer, operation, err)
		return false
	}
	return true
}
