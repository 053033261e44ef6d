// Package testing provides test utilities, builders, and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - CloudFixture: in-memory OpenStack backend behind an openstack.MockClient
//   - NetworkSpecBuilder: fluent builder for network provisioning requests
//   - RecordingObserver: provisioning.Observer that keeps every event
//   - MockOperations: testify mock of the administrative operations used by CLI handlers
//
// Usage:
//
//	cloud := testing.NewCloudFixture()
//	cloud.WithRole("member")
//	mgr := manager.New(cloud.Mock())
package testing
