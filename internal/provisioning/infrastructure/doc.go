// Package infrastructure provisions project networking on OpenStack.
//
// It builds the private network topology of a project (network, subnet, router
// with an external gateway, router interface) as an ordered list of
// provisioning steps, and opens SSH on the project's security group.
package infrastructure
