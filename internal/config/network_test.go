package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func validSpec() NetworkSpec {
	return NetworkSpec{
		ProjectName:         "proj1",
		ExternalNetworkName: "public",
		SubnetCIDR:          "192.168.10.0/24",
		GatewayIP:           "192.168.10.1",
		DNSNameservers:      []string{"8.8.8.8", "8.8.4.4"},
	}
}

func TestNetworkSpec_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*NetworkSpec)
		wantErr []string
	}{
		{name: "valid", mutate: func(*NetworkSpec) {}},
		{name: "no dns servers", mutate: func(s *NetworkSpec) { s.DNSNameservers = nil }},
		{
			name:    "ipv6 cidr",
			mutate:  func(s *NetworkSpec) { s.SubnetCIDR = "fd00::/64"; s.GatewayIP = "fd00::1" },
			wantErr: []string{"only IPv4"},
		},
		{
			name:    "gateway outside subnet",
			mutate:  func(s *NetworkSpec) { s.GatewayIP = "10.0.0.1" },
			wantErr: []string{"outside subnet"},
		},
		{
			name:    "gateway is network address",
			mutate:  func(s *NetworkSpec) { s.GatewayIP = "192.168.10.0" },
			wantErr: []string{"network address"},
		},
		{
			name: "everything wrong",
			mutate: func(s *NetworkSpec) {
				*s = NetworkSpec{SubnetCIDR: "nope", GatewayIP: "nope", DNSNameservers: []string{"dns"}}
			},
			wantErr: []string{"project name", "external network", "invalid subnet CIDR", "invalid gateway", "invalid DNS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec := validSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Len(t, multierr.Errors(err), len(tt.wantErr))
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
