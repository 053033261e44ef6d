package provisioning

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/osadmin/internal/platform/openstack"
)

// Logger is the minimal printf-style logging surface.
type Logger interface {
	Printf(format string, v ...any)
}

// Observer defines the interface for structured observability during provisioning.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// Progress reports progress for a step
	Progress(step string, current, total int)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	Step      string            // Step or operation name (e.g., "create-network")
	Message   string            // Human-readable message
	Resource  string            // Resource name/ID if applicable
	Err       error             // Cause, for failure events
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventStepStarted indicates a workflow step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a workflow step completed successfully.
	EventStepCompleted EventType = "step.completed"

	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceUpdated indicates an existing resource was modified.
	EventResourceUpdated EventType = "resource.updated"

	// EventOperationFailed indicates a manager operation returned false.
	// It is the only event that carries the cause.
	EventOperationFailed EventType = "operation.failed"

	// EventWarning flags behavior worth a second look that is not an error.
	EventWarning EventType = "warning"

	// EventProgress indicates progress in a multi-step operation.
	EventProgress EventType = "progress"
)

// IsFailure reports whether the event type describes a failure.
func (t EventType) IsFailure() bool {
	switch t {
	return t == EventOperationFailed
}

// LogObserver implements Observer on top of a logr.Logger.
type LogObserver struct {
	log           logr.Logger
	contextFields map[string]string
}

// NewLogObserver creates an observer that writes to log.
func NewLogObserver(log logr.Logger) *LogObserver {
	return &LogObserver{
		log:           log,
		contextFields: make(map[string]string),
	}
}

// NewDiscardObserver creates an observer that drops everything.
func NewDiscardObserver() *LogObserver {
	return NewLogObserver(logr.Discard())
}

// Printf implements Logger.
func (o *LogObserver) Printf(format string, v ...any) {
	o.log.Info(fmt.Sprintf(format, v...))
}

// Event implements Observer.
func (o *LogObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	fields := make(map[string]string, len(o.contextFields)+len(event.Fields))
	for k, v := range o.contextFields {
		fields[k] = v
	}
	for k, v := range event.Fields {
		fields[k] = v
	}

	kv := []any{"event", string(event.Type)}
	if event.Step != "" {
		kv = append(kv, "step", event.Step)
	}
	if event.Resource != "" {
		kv = append(kv, "resource", event.Resource)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kv = append(kv, k, fields[k])
	}

	switch {
	case event.Type.IsFailure():
		o.log.Error(event.Err, event.Message, kv...)
	case event.Type == EventWarning:
		o.log.Info(event.Message, append(kv, "warning", true)...)
	case event.Type == EventProgress || event.Type == EventResourceCreating:
		o.log.V(1).Info(event.Message, kv...)
	default:
		o.log.Info(event.Message, kv...)
	}
}

// Progress implements Observer.
func (o *LogObserver) Progress(step string, current, total int) {
	fields := map[string]string{
		"current": fmt.Sprint(current),
		"total":   fmt.Sprint(total),
	}
	if total > 0 {
		fields["percent"] = fmt.Sprint((current * 100) / total)
	}
	o.Event(Event{
		Type:    EventProgress,
		Step:    step,
		Message: "progress",
		Fields:  fields,
	})
}

// WithFields implements Observer.
func (o *LogObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string, len(o.contextFields)+len(fields))
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &LogObserver{
		log:           o.log,
		contextFields: newFields,
	}
}

// Helper functions for common events

// LogStepStart logs a step start event.
func LogStepStart(observer Observer, step string) {
	observer.Event(Event{
		Type:    EventStepStarted,
		Step:    step,
		Message: "starting",
	})
}

// LogStepComplete logs a step completion event.
func LogStepComplete(observer Observer, step string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventStepCompleted,
		Step:    step,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogResourceCreating logs a resource creation start event.
func LogResourceCreating(observer Observer, step, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Step:     step,
		Resource: resourceName,
		Message:  fmt.Sprintf("creating %s", resourceType),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, step, resourceType, resourceName, resourceID string) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Step:     step,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s created", resourceType),
		Fields: map[string]string{
			"type": resourceType,
			"id":   resourceID,
		},
	})
}

// LogResourceUpdated logs a change to an existing resource.
func LogResourceUpdated(observer Observer, step, resourceType, resourceName, resourceID string) {
	observer.Event(Event{
		Type:     EventResourceUpdated,
		Step:     step,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s updated", resourceType),
		Fields: map[string]string{
			"type": resourceType,
			"id":   resourceID,
		},
	})
}

// LogOperationFailed logs a manager operation that returned false.
// The failed workflow step and resource, when err carries them, become fields.
func LogOperationFailed(observer Observer, operation string, err error) {
	fields := map[string]string{}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		fields["failed_step"] = stepErr.Step
	}
	resource := ""
	var resErr *ResourceError
	if errors.As(err, &resErr) {
		resource = resErr.Name
		fields["type"] = resErr.Kind
	}
	if openstack.IsForbidden(err) {
		fields["hint"] = "the session lacks the admin role for this call"
	}
	observer.Event(Event{
		Type:     EventOperationFailed,
		Step:     operation,
		Resource: resource,
		Message:  "operation failed",
		Err:      err,
		Fields:   fields,
	})
}

// LogWarning logs a warning event.
func LogWarning(observer Observer, step, message string) {
	observer.Event(Event{
		Type:    EventWarning,
		Step:    step,
		Message: message,
	})
}
