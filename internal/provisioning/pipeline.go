package provisioning

import "time"

// StepStatus is the state a step moved into.
type StepStatus int

const (
	StepRunning StepStatus = iota
	StepDone
	StepFailed
)

// StepUpdate reports a step transition to listeners.
type StepUpdate struct {
	Index    int // zero-based
	Total    int
	Name     string
	Status   StepStatus
	Err      error
	Duration time.Duration
}

// StepListener receives step transitions as they happen.
type StepListener func(StepUpdate)

// RunSteps executes steps in order and stops at the first failure.
// A cancelled ctx stops the run before the next step starts.
// The failing step is recorded in ctx.Ledger; earlier records stay in place.
// The returned error is a *StepError and is not logged here.
func RunSteps(ctx *Context, steps []Step, listeners ...StepListener) error {
	start := time.Now()
	notify := func(u StepUpdate) {
		for _, l := range listeners {
			l(u)
		}
	}

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			ctx.Ledger.Fail(step.Name())
			return &StepError{Step: step.Name(), Err: err}
		}

		stepStart := time.Now()
		update := StepUpdate{Index: i, Total: len(steps), Name: step.Name()}

		LogStepStart(ctx.Observer, step.Name())
		ctx.Observer.Progress(step.Name(), i+1, len(steps))
		notify(update)

		if err := step.Run(ctx); err != nil {
			ctx.Ledger.Fail(step.Name())
			update.Status, update.Err, update.Duration = StepFailed, err, time.Since(stepStart)
			notify(update)
			return &StepError{Step: step.Name(), Err: err}
		}

		ctx.Ledger.Complete(step.Name())
		LogStepComplete(ctx.Observer, step.Name(), time.Since(stepStart))
		update.Status, update.Duration = StepDone, time.Since(stepStart)
		notify(update)
	}

	ctx.Observer.Printf("Completed %d steps in %v", len(steps), time.Since(start).Round(time.Millisecond))
	return nil
}
