// Package config loads OpenStack cloud profiles and validates the inputs
// of the provisioning workflows.
//
// A [Cloud] is one named entry of a clouds.yaml file. Files are searched in
// the same places os-client-config looks:
//
//   - $OS_CLIENT_CONFIG_FILE, when set
//   - the current directory
//   - $XDG_CONFIG_HOME/openstack (or ~/.config/openstack)
//   - /etc/openstack
//
// Secrets may be kept apart in a secure.yaml found on the same search path;
// its entries are merged over the matching clouds.yaml profile. When no
// profile name is given, [FromEnv] builds a profile from the OS_* variables.
package config
