// Package manager is the administrative entry point for an OpenStack cloud.
//
// A Manager wraps one authenticated openstack.CloudManager and exposes the
// account and network operations as calls returning a success flag. Failures
// are never returned to the caller; they are logged through the provisioning
// Observer and counted on the metrics Recorder.
//
// # Usage
//
//	sessions, err := openstack.Connect(ctx, cloud)
//	mgr := manager.New(openstack.NewRealClient(sessions), manager.WithObserver(observer))
//	if mgr.CheckProjectnameAvailability(ctx, "proj1") {
//	    mgr.CreateProject(ctx, "demo", "proj1", nil, true)
//	}
package manager
