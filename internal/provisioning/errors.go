package provisioning

import "fmt"

// StepError is returned by RunSteps for the step the run stopped at.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ResourceError ties a failed create or update to the resource it targeted.
type ResourceError struct {
	Kind string
	Name string
	Err  error
}

func (e *ResourceError) Error() string {
	return e.Err.Error()
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// ResourceFailed wraps err with the kind and name of the resource it concerns.
func ResourceFailed(kind, name string, err error) error {
	return &ResourceError{Kind: kind, Name: name, Err: err}
}
