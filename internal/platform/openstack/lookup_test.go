package openstack

import (
	"errors"
	"testing"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct{ Name string }

func nameOf(n *named) string { return n.Name }

func TestLookupFromList(t *testing.T) {
	t.Parallel()
	items := []named{{Name: "alpha"}, {Name: "beta"}, {Name: "beta"}}

	t.Run("found returns first exact match", func(t *testing.T) {
		t.Parallel()
		l := lookupFromList(items, nil, "beta", nameOf)
		require.Equal(t, LookupFound, l.State)
		assert.Same(t, &items[1], l.Resource)
	})

	t.Run("server ignored the filter", func(t *testing.T) {
		t.Parallel()
		l := lookupFromList(items, nil, "gamma", nameOf)
		assert.Equal(t, LookupNotFound, l.State)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		t.Parallel()
		l := lookupFromList([]named{}, nil, "alpha", nameOf)
		assert.Equal(t, LookupNotFound, l.State)
	})

	t.Run("404 is not found", func(t *testing.T) {
		t.Parallel()
		l := lookupFromList[named](nil, gophercloud.ErrUnexpectedResponseCode{Actual: 404}, "alpha", nameOf)
		assert.Equal(t, LookupNotFound, l.State)
		assert.NoError(t, l.Err)
	})

	t.Run("other errors fail", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection refused")
		l := lookupFromList[named](nil, boom, "alpha", nameOf)
		assert.Equal(t, LookupFailed, l.State)
		assert.ErrorIs(t, l.Err, boom)
	})
}

func TestLookup_Get(t *testing.T) {
	t.Parallel()

	res, err := Found(&named{Name: "a"}).Get("project", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", res.Name)

	_, err = NotFound[*named]().Get("project", "a")
	require.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), `project "a"`)

	boom := errors.New("boom")
	_, err = Failed[*named](boom).Get("role", "admin")
	require.ErrorIs(t, err, boom)
	assert.False(t, IsNotFound(err))

	var zero Lookup[*named]
	_, err = zero.Get("user", "bob")
	require.ErrorIs(t, err, errLookupIncomplete)
}

func TestLookupState_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "found", LookupFound.String())
	assert.Equal(t, "not found", LookupNotFound.String())
	assert.Equal(t, "failed", LookupFailed.String())
}
