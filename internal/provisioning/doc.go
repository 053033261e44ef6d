// Package provisioning provides shared types, interfaces, and orchestration for
// multi-step OpenStack provisioning workflows.
//
// # Subpackages
//
//   - infrastructure: project network topology and security group rules
//
// # Core Types
//
// Context carries the cloud client, the requested network, accumulated state and the observer.
// Step defines one workflow step with Name() and Run() methods.
// State accumulates ids produced by earlier steps (project, network, subnet, router).
// Ledger records every resource a step committed remotely, so a failed run can
// report what is left behind.
package provisioning
