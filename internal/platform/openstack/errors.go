package openstack

import (
	"errors"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
)

var (
	// ErrNotFound is wrapped by every error about a resource that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExternalNetworkNotFound is returned when no network matches the
	// requested external network name.
	ErrExternalNetworkNotFound = errors.New("external network not found")

	// ErrUnsupportedIdentityVersion is returned for profiles that do not use Identity v3.
	ErrUnsupportedIdentityVersion = errors.New("only identity API version 3 is supported")
)

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound) || gophercloud.ResponseCodeIs(err, http.StatusNotFound)
}

// IsConflict checks if an error indicates the resource already exists or changed concurrently.
func IsConflict(err error) bool {
	return err != nil && gophercloud.ResponseCodeIs(err, http.StatusConflict)
}

// IsForbidden checks if an error indicates the session lacks the required role.
func IsForbidden(err error) bool {
	return err != nil && gophercloud.ResponseCodeIs(err, http.StatusForbidden)
}
