package provisioning

import (
	"context"

	"github.com/imamik/osadmin/internal/config"
	"github.com/imamik/osadmin/internal/platform/openstack"
)

// Context wraps all dependencies and state needed by a provisioning step.
type Context struct {
	context.Context
	Network  config.NetworkSpec
	State    *State
	Ledger   *Ledger
	Cloud    openstack.CloudManager
	Observer Observer
}

// NewContext creates a new provisioning context. A nil observer discards events.
func NewContext(
	ctx context.Context,
	network config.NetworkSpec,
	cloud openstack.CloudManager,
	observer Observer,
) *Context {
	if observer == nil {
		observer = NewDiscardObserver()
	}
	return &Context{
		Context:  ctx,
		Network:  network,
		State:    NewState(),
		Ledger:   NewLedger(),
		Cloud:    cloud,
		Observer: observer,
	}
}
