// Package openstack wraps the gophercloud Identity v3 and Networking v2 clients
// behind small interfaces used by the administrative workflows.
//
// # Architecture
//
//   - client.go: interfaces and option types
//   - session.go: authentication and service client setup from a cloud profile
//   - real_client.go: RealClient, the gophercloud-backed implementation
//   - identity.go: projects, users, roles and role assignments
//   - network.go: networks, subnets, routers and router interfaces
//   - security_group.go: security groups and rules
//   - lookup.go: tri-state results of name lookups
//   - errors.go: sentinel errors and API error classification
//   - mock_client.go: function-field mock for tests
//
// # Lookups
//
// Every name lookup returns a [Lookup] that is either found, not found or
// failed. A 404 and an empty result both count as not found, so callers never
// have to tell a missing resource apart from a nil one.
//
// # Sessions
//
// One authenticated ProviderClient backs both service clients. Router
// interfaces and role grants are reached through the same clients as every
// other call.
package openstack
