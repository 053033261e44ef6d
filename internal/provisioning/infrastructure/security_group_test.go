package infrastructure

import (
	"testing"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/osadmin/internal/platform/openstack"
	"github.com/imamik/osadmin/internal/provisioning"
	osatesting "github.com/imamik/osadmin/internal/testing"
)

func TestProvisionSSHRule_Success(t *testing.T) {
	cloud := osatesting.NewCloudFixture()
	adminID := cloud.WithProject("admin")
	projectID := cloud.WithProject("proj1")
	cloud.WithSecurityGroup("default", adminID)
	groupID := cloud.WithSecurityGroup("default", projectID)

	rule, err := ProvisionSSHRule(osatesting.TestContext(t), cloud.Mock(), osatesting.NewRecordingObserver(), "proj1")

	require.NoError(t, err)
	require.NotNil(t, rule)
	created := cloud.Rules()
	require.Len(t, created, 1)
	assert.Equal(t, groupID, created[0].SecGroupID)
	assert.Equal(t, "ingress", created[0].Direction)
	assert.Equal(t, "IPv4", created[0].EtherType)
	assert.Equal(t, "tcp", created[0].Protocol)
	assert.Equal(t, 22, created[0].PortRangeMin)
	assert.Equal(t, 22, created[0].PortRangeMax)
	assert.Equal(t, "0.0.0.0/0", created[0].RemoteIPPrefix)
	assert.Equal(t, projectID, created[0].ProjectID)
}

func TestProvisionSSHRule_NoGroupIsNoop(t *testing.T) {
	cloud := osatesting.NewCloudFixture()
	adminID := cloud.WithProject("admin")
	cloud.WithProject("proj1")
	cloud.WithSecurityGroup("default", adminID)
	observer := osatesting.NewRecordingObserver()

	rule, err := ProvisionSSHRule(osatesting.TestContext(t), cloud.Mock(), observer, "proj1")

	require.NoError(t, err)
	assert.Nil(t, rule)
	assert.Empty(t, cloud.Rules())
	assert.Zero(t, cloud.Calls("CreateIngressRule"))
	assert.Len(t, observer.EventsOfType(provisioning.EventWarning), 1)
}

func TestProvisionSSHRule_ProjectNotFound(t *testing.T) {
	cloud := osatesting.NewCloudFixture()

	_, err := ProvisionSSHRule(osatesting.TestContext(t), cloud.Mock(), osatesting.NewRecordingObserver(), "missing")

	assert.ErrorIs(t, err, openstack.ErrNotFound)
	assert.Zero(t, cloud.Calls("ListSecurityGroups"))
}

func TestProvisionSSHRule_ListFails(t *testing.T) {
	cloud := osatesting.NewCloudFixture()
	cloud.WithProject("proj1")
	cloud.FailOn("ListSecurityGroups", osatesting.ServerError())

	_, err := ProvisionSSHRule(osatesting.TestContext(t), cloud.Mock(), osatesting.NewRecordingObserver(), "proj1")

	assert.Error(t, err)
	assert.Zero(t, cloud.Calls("CreateIngressRule"))
}

func TestOwnedGroup(t *testing.T) {
	list := []groups.SecGroup{
		{ID: "a", ProjectID: "p1"},
		{ID: "b", ProjectID: "p2"},
		{ID: "c", TenantID: "p1"},
	}

	t.Run("last match wins", func(t *testing.T) {
		g := ownedGroup(list, "p1")
		require.NotNil(t, g)
		assert.Equal(t, "c", g.ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, ownedGroup(list, "p3"))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, ownedGroup(nil, "p1"))
	})
}
