package async

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel starts every task and waits for all of them. The returned error
// combines the failures in task order, each prefixed with the task name, so
// errors.Is still matches any of them.
//
// Example:
//
//	var user *users.User
//	var project *projects.Project
//	err := RunParallel(ctx, []Task{
//	    {Name: "user", Func: func(ctx context.Context) (err error) { user, err = lookupUser(ctx); return err }},
//	    {Name: "project", Func: func(ctx context.Context) (err error) { project, err = lookupProject(ctx); return err }},
//	})
func RunParallel(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	errs := make([]error, len(tasks))
	done := make(chan struct{}, len(tasks))

	for i, task := range tasks {
		go func() {
			defer func() { done <- struct{}{} }()
			if err := task.Func(ctx); err != nil {
				errs[i] = fmt.Errorf("%s: %w", task.Name, err)
			}
		}()
	}

	for range tasks {
		<-done
	}

	return multierr.Combine(errs...)
}
