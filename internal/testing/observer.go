package testing

import (
	"fmt"
	"sync"

	"github.com/imamik/osadmin/internal/provisioning"
)

// RecordingObserver is a provisioning.Observer that keeps every message and event.
type RecordingObserver struct {
	mu       sync.Mutex
	events   []provisioning.Event
	messages []string
	fields   map[string]string
}

// NewRecordingObserver creates an empty RecordingObserver.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{fields: make(map[string]string)}
}

// Printf records the formatted message.
func (o *RecordingObserver) Printf(format string, v ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, fmt.Sprintf(format, v...))
}

// Event records the event with the observer's context fields merged in.
func (o *RecordingObserver) Event(event provisioning.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.fields) > 0 {
		merged := make(map[string]string, len(o.fields)+len(event.Fields))
		for k, v := range o.fields {
			merged[k] = v
		}
		for k, v := range event.Fields {
			merged[k] = v
		}
		event.Fields = merged
	}
	o.events = append(o.events, event)
}

// Progress records a progress event.
func (o *RecordingObserver) Progress(step string, current, total int) {
	o.Event(provisioning.Event{
		Type:    provisioning.EventProgress,
		Step:    step,
		Message: "progress",
		Fields: map[string]string{
			"current": fmt.Sprint(current),
			"total":   fmt.Sprint(total),
		},
	})
}

// WithFields returns an observer sharing this one's records.
func (o *RecordingObserver) WithFields(fields map[string]string) provisioning.Observer {
	o.mu.Lock()
	defer o.mu.Unlock()
	for k, v := range fields {
		o.fields[k] = v
	}
	return o
}

// Events returns all recorded events.
func (o *RecordingObserver) Events() []provisioning.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]provisioning.Event(nil), o.events...)
}

// EventsOfType returns the recorded events of type t.
func (o *RecordingObserver) EventsOfType(t provisioning.EventType) []provisioning.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []provisioning.Event
	for _, e := range o.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Messages returns all Printf messages.
func (o *RecordingObserver) Messages() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.messages...)
}
