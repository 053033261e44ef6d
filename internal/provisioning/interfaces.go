package provisioning

// Step defines the interface for one step of a provisioning workflow.
type Step interface {
	// Name returns the human-readable name of this step.
	Name() string

	// Run executes the step. Resources it creates go into ctx.Ledger.
	Run(ctx *Context) error
}

// StepFunc adapts a plain function to the Step interface.
type StepFunc struct {
	StepName string
	Fn       func(ctx *Context) error
}

// Name implements Step.
func (s StepFunc) Name() string { return s.StepName }

// Run implements Step.
func (s StepFunc) Run(ctx *Context) error { return s.Fn(ctx) }
