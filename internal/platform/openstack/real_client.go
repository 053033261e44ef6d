package openstack

import (
	"github.com/gophercloud/gophercloud/v2"

	"github.com/imamik/osadmin/internal/metrics"
)

const (
	serviceIdentity = "identity"
	serviceNetwork  = "network"
)

// RealClient implements CloudManager using the OpenStack APIs.
type RealClient struct {
	identity *gophercloud.ServiceClient
	network  *gophercloud.ServiceClient
	recorder *metrics.Recorder
}

// Ensure interface compliance
var _ CloudManager = (*RealClient)(nil)

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithRecorder records every API call on the given recorder.
func WithRecorder(r *metrics.Recorder) ClientOption {
	return func(c *RealClient) {
		c.recorder = r
	}
}

// WithServiceClients sets the identity and network clients directly (useful for testing).
func WithServiceClients(identity, network *gophercloud.ServiceClient) ClientOption {
	return func(c *RealClient) {
		c.identity = identity
		c.network = network
	}
}

// NewRealClient creates a RealClient over the given sessions.
func NewRealClient(s *Sessions, opts ...ClientOption) *RealClient {
	c := &RealClient{}
	if s != nil {
		c.identity = s.Identity
		c.network = s.Network
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// observe records the call and hands back its error unchanged.
func (c *RealClient) observe(service, call string, err error) error {
	c.recorder.ObserveRemoteCall(service, call, err)
	return err
}
