package provisioning

import "sync"

// Resource is one remote object a step committed.
type Resource struct {
	Step string
	Kind string
	Name string
	ID   string
}

// Ledger records, in order, the steps that completed and the resources they created.
// Nothing is compensated on failure; the ledger only reports what is committed.
type Ledger struct {
	mu        sync.Mutex
	completed []string
	failed    string
	resources []Resource
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record notes a resource created by step.
func (l *Ledger) Record(step, kind, name, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resources = append(l.resources, Resource{Step: step, Kind: kind, Name: name, ID: id})
}

// Complete marks a step as finished.
func (l *Ledger) Complete(step string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.completed = append(l.completed, step)
}

// Fail marks the step the run stopped at.
func (l *Ledger) Fail(step string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failed = step
}

// Completed returns the names of finished steps in run order.
func (l *Ledger) Completed() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.completed...)
}

// FailedStep returns the step the run stopped at, or "" if none failed.
func (l *Ledger) FailedStep() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failed
}

// Committed returns every recorded resource in creation order.
func (l *Ledger) Committed() []Resource {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Resource(nil), l.resources...)
}

// Find returns the first resource of the given kind.
func (l *Ledger) Find(kind string) (Resource, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.resources {
		if r.Kind == kind {
			return r, true
		}
	}
	return Resource{}, false
}
