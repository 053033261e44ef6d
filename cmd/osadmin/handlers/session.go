// Package handlers implements the business logic for CLI commands.
//
// Each handler opens a session against the selected cloud, runs one
// administrative operation and reports the outcome on the terminal.
// Factory variables at package level are replaced in tests.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/osadmin/internal/config"
	"github.com/imamik/osadmin/internal/logging"
	"github.com/imamik/osadmin/internal/manager"
	"github.com/imamik/osadmin/internal/metrics"
	"github.com/imamik/osadmin/internal/platform/openstack"
	"github.com/imamik/osadmin/internal/provisioning"
	"github.com/imamik/osadmin/internal/ui/style"
)

var (
	// ErrOperationFailed is returned when an operation reports failure.
	// The cause has already been logged.
	ErrOperationFailed = errors.New("operation failed")

	// ErrUnavailable is returned by the check commands when the name is taken.
	ErrUnavailable = errors.New("name is not available")

	// ErrNoCloud is returned when neither a profile nor OS_AUTH_URL is set.
	ErrNoCloud = errors.New("no cloud selected: use --cloud, set OS_CLOUD or export OS_AUTH_URL")
)

// Globals holds the settings shared by every command.
type Globals struct {
	Cloud       string
	Debug       bool
	LogFormat   string
	MetricsFile string
	Timeout     time.Duration
}

// Operations is the administrative surface handlers call.
type Operations interface {
	CheckUsernameAvailability(ctx context.Context, name string) bool
	CheckProjectnameAvailability(ctx context.Context, name string) bool
	CreateProject(ctx context.Context, description, name string, properties map[string]any, enabled bool) bool
	CreateUser(ctx context.Context, email, name, password string, enabled bool) bool
	PairUserWithProject(ctx context.Context, userName, projectName, roleName string) bool
	UpdateProjectStatus(ctx context.Context, name string, enabled bool) bool
	UpdateUserStatus(ctx context.Context, name string, enabled bool) bool
	UpdateUserPassword(ctx context.Context, name, password string) bool
	ProvisionNetwork(ctx context.Context, spec config.NetworkSpec, listeners ...provisioning.StepListener) (*provisioning.Ledger, bool)
	AddSSHRule(ctx context.Context, projectName string) bool
}

// Ensure interface compliance
var _ Operations = (*manager.Manager)(nil)

// Factory function variables - can be replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	// loadCloud resolves a named profile from clouds.yaml.
	loadCloud = config.LoadCloud

	// cloudFromEnv builds a profile from OS_* variables.
	cloudFromEnv = config.FromEnv

	// newCloudClient authenticates and returns the API client for cloud.
	newCloudClient = func(ctx context.Context, cloud *config.Cloud, recorder *metrics.Recorder) (openstack.CloudManager, error) {
		sessions, err := openstack.Connect(ctx, cloud)
		if err != nil {
			return nil, err
		}
		return openstack.NewRealClient(sessions, openstack.WithRecorder(recorder)), nil
	}

	// newOperations builds the manager over an API client.
	newOperations = func(cloud openstack.CloudManager, observer provisioning.Observer, recorder *metrics.Recorder) Operations {
		return manager.New(cloud, manager.WithObserver(observer), manager.WithRecorder(recorder))
	}
)

// session is what one command invocation works with.
type session struct {
	ops Operations
	log logr.Logger
	out *style.Printer
}

// withSession sets up logging, the cloud connection and metrics, runs fn and
// writes the metrics file when requested.
func withSession(ctx context.Context, g Globals, fn func(ctx context.Context, s *session) error) error {
	log, err := logging.New(stderr, logging.Config{Format: g.LogFormat, Debug: g.Debug})
	if err != nil {
		return err
	}

	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	cloud, err := resolveCloud(g.Cloud)
	if err != nil {
		return err
	}
	log.V(1).Info("Using cloud", "cloud", cloud.Name, "auth_url", cloud.Auth.AuthURL, "region", cloud.RegionName)

	recorder := metrics.NewRecorder()
	client, err := newCloudClient(ctx, cloud, recorder)
	if err != nil {
		return fmt.Errorf("failed to connect to cloud %q: %w", cloud.Name, err)
	}

	s := &session{
		ops: newOperations(client, provisioning.NewLogObserver(log), recorder),
		log: log,
		out: style.NewPrinter(stdout),
	}
	runErr := fn(ctx, s)

	if g.MetricsFile != "" {
		if err := recorder.WriteTextfile(g.MetricsFile); err != nil {
			log.Error(err, "Failed to write metrics", "path", g.MetricsFile)
		}
	}
	return runErr
}

// resolveCloud loads the named profile, or the OS_* environment when no name is given.
func resolveCloud(name string) (*config.Cloud, error) {
	if name != "" {
		return loadCloud(name)
	}
	cloud, err := cloudFromEnv()
	if err != nil {
		return nil, fmt.Errorf("invalid OS_* environment: %w", err)
	}
	if cloud == nil {
		return nil, ErrNoCloud
	}
	return cloud, nil
}

// report prints the outcome of a boolean operation.
func (s *session) report(ok bool, success, failure string) error {
	if !ok {
		s.out.Failure("%s", failure)
		return fmt.Errorf("%w: %s", ErrOperationFailed, failure)
	}
	s.out.Success("%s", success)
	return nil
}
