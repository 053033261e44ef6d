package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"project check needs a name", []string{"project", "check"}},
		{"project create takes one name", []string{"project", "create", "a", "b"}},
		{"user create needs email", []string{"user", "create", "alice", "--password", "x"}},
		{"pair needs three args", []string{"pair", "alice", "proj1"}},
		{"network init needs cidr", []string{"network", "init", "proj1", "--external-network", "public", "--gateway", "10.0.0.1"}},
		{"ssh-rule add needs project", []string{"ssh-rule", "add"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Root()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs(tt.args)

			assert.Error(t, root.Execute())
		})
	}
}

func TestNetworkInit_Flags(t *testing.T) {
	cmd, _, err := Root().Find([]string{"network", "init"})
	assert.NoError(t, err)

	for _, name := range []string{"external-network", "cidr", "gateway", "dns", "no-tui"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestProjectCreate_Flags(t *testing.T) {
	cmd, _, err := Root().Find([]string{"project", "create"})
	assert.NoError(t, err)

	assert.Equal(t, "d", cmd.Flags().Lookup("description").Shorthand)
	assert.Equal(t, "p", cmd.Flags().Lookup("property").Shorthand)
	assert.NotNil(t, cmd.Flags().Lookup("enabled"))
}
