package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveOperation(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveOperation("create_project", true, 120*time.Millisecond)
	r.ObserveOperation("create_project", false, 80*time.Millisecond)
	r.ObserveOperation("create_project", true, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operationTotal.WithLabelValues("create_project", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operationTotal.WithLabelValues("create_project", ResultFailure)))
	assert.Equal(t, 1, testutil.CollectAndCount(r.operationDuration))
}

func TestRecorder_ObserveRemoteCall(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveRemoteCall("network", "router.create", nil)
	r.ObserveRemoteCall("network", "router.create", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.remoteCallsTotal.WithLabelValues("network", "router.create", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.remoteCallsTotal.WithLabelValues("network", "router.create", ResultFailure)))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	t.Parallel()
	var r *Recorder

	assert.NotPanics(t, func() {
		r.ObserveOperation("x", true, time.Second)
		r.ObserveRemoteCall("identity", "project.list", nil)
	})
	assert.Nil(t, r.Registry())
	assert.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "never.prom")))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveOperation("add_ssh_rule", true, time.Second)

	path := filepath.Join(t.TempDir(), "osadmin.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `osadmin_operation_total{operation="add_ssh_rule",result="success"} 1`)
}
