package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/osadmin/internal/config"
	"github.com/imamik/osadmin/internal/provisioning"
	"github.com/imamik/osadmin/internal/provisioning/infrastructure"
	"github.com/imamik/osadmin/internal/ui/tui"
)

func testNetworkOptions() NetworkOptions {
	return NetworkOptions{
		ExternalNetwork: "public",
		CIDR:            "192.168.10.0/24",
		Gateway:         "192.168.10.1",
		DNS:             []string{"8.8.8.8"},
		NoTUI:           true,
	}
}

var testNetworkSpec = config.NetworkSpec{
	ProjectName:         "proj1",
	ExternalNetworkName: "public",
	SubnetCIDR:          "192.168.10.0/24",
	GatewayIP:           "192.168.10.1",
	DNSNameservers:      []string{"8.8.8.8"},
}

func TestInitNetwork_PlainOutput(t *testing.T) {
	ops, out := setupHandlers(t)
	ops.On("ProvisionNetwork", mock.Anything, testNetworkSpec).Return(provisioning.NewLedger(), true, []provisioning.StepUpdate{
		{Index: 0, Total: 5, Name: infrastructure.StepResolveProject, Status: provisioning.StepRunning},
		{Index: 0, Total: 5, Name: infrastructure.StepResolveProject, Status: provisioning.StepDone, Duration: 12 * time.Millisecond},
	})

	require.NoError(t, InitNetwork(context.Background(), testGlobals, "proj1", testNetworkOptions()))

	assert.Contains(t, out.String(), "[1/5] resolve-project (12ms)")
	assert.Contains(t, out.String(), `network of project "proj1" initialized`)
}

func TestInitNetwork_FailureListsLeftovers(t *testing.T) {
	ops, out := setupHandlers(t)
	ledger := provisioning.NewLedger()
	ledger.Record(infrastructure.StepCreateNetwork, infrastructure.KindNetwork, "private", "net-1")
	ledger.Record(infrastructure.StepCreateSubnet, infrastructure.KindSubnet, "private", "sub-1")
	ops.On("ProvisionNetwork", mock.Anything, testNetworkSpec).Return(ledger, false, []provisioning.StepUpdate{
		{Index: 3, Total: 5, Name: infrastructure.StepCreateRouter, Status: provisioning.StepFailed, Err: errors.New("external network not found")},
	})

	err := InitNetwork(context.Background(), testGlobals, "proj1", testNetworkOptions())
	assert.ErrorIs(t, err, ErrOperationFailed)

	s := out.String()
	assert.Contains(t, s, "[4/5] create-router: external network not found")
	assert.Contains(t, s, "resources left in place")
	assert.Contains(t, s, "net-1")
	assert.Contains(t, s, "sub-1")
	assert.Contains(t, s, "delete network private (net-1) before running network init again")
}

func TestInitNetwork_InvalidRequestNeverConnects(t *testing.T) {
	_, _ = setupHandlers(t)
	opts := testNetworkOptions()
	opts.Gateway = "10.0.0.1"

	err := InitNetwork(context.Background(), testGlobals, "proj1", opts)
	assert.ErrorContains(t, err, "invalid network request")
}

func TestInitNetwork_UsesTUIOnTerminal(t *testing.T) {
	ops, _ := setupHandlers(t)
	isInteractive = func() bool { return true }
	type ctxKey struct{}
	fromTUI := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Value(ctxKey{}) == "tui" })
	ops.On("ProvisionNetwork", fromTUI, testNetworkSpec).Return(provisioning.NewLedger(), true)

	var gotSteps []string
	runNetworkTUI = func(ctx context.Context, runFn tui.NetworkRunFunc, project, externalNetwork, cidr string, steps []string) (*provisioning.Ledger, bool, error) {
		assert.Equal(t, "proj1", project)
		assert.Equal(t, "public", externalNetwork)
		assert.Equal(t, "192.168.10.0/24", cidr)
		gotSteps = steps
		ledger, ok := runFn(context.WithValue(ctx, ctxKey{}, "tui"), func(provisioning.StepUpdate) {})
		return ledger, ok, nil
	}

	opts := testNetworkOptions()
	opts.NoTUI = false
	require.NoError(t, InitNetwork(context.Background(), testGlobals, "proj1", opts))
	assert.Equal(t, infrastructure.NewProvisioner().StepNames(), gotSteps)
}

func TestInitNetwork_TUIError(t *testing.T) {
	_, _ = setupHandlers(t)
	isInteractive = func() bool { return true }
	runNetworkTUI = func(context.Context, tui.NetworkRunFunc, string, string, string, []string) (*provisioning.Ledger, bool, error) {
		return nil, false, errors.New("TUI error: no tty")
	}

	opts := testNetworkOptions()
	opts.NoTUI = false
	assert.ErrorContains(t, InitNetwork(context.Background(), testGlobals, "proj1", opts), "no tty")
}

func TestAddSSHRule(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ops, out := setupHandlers(t)
		ops.On("AddSSHRule", mock.Anything, "proj1").Return(true)

		require.NoError(t, AddSSHRule(context.Background(), testGlobals, "proj1"))
		assert.Contains(t, out.String(), `SSH access configured for project "proj1"`)
	})

	t.Run("failure", func(t *testing.T) {
		ops, out := setupHandlers(t)
		ops.On("AddSSHRule", mock.Anything, "proj1").Return(false)

		assert.ErrorIs(t, AddSSHRule(context.Background(), testGlobals, "proj1"), ErrOperationFailed)
		assert.Contains(t, out.String(), `SSH rule not added to project "proj1"`)
	})
}
