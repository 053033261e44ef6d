package provisioning

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockObserver is a test implementation of Observer that records events.
type MockObserver struct {
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		events:   make([]Event, 0),
		messages: make([]string, 0),
		fields:   make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, v ...any) {
	m.messages = append(m.messages, fmt.Sprintf(format, v...))
}

func (m *MockObserver) Event(event Event) {
	m.events = append(m.events, event)
}

func (m *MockObserver) Progress(step string, current, total int) {
	m.Event(Event{
		Type:    EventProgress,
		Step:    step,
		Message: "progress",
		Fields: map[string]string{
			"current": fmt.Sprint(current),
			"total":   fmt.Sprint(total),
		},
	})
}

func (m *MockObserver) WithFields(fields map[string]string) Observer {
	for k, v := range fields {
		m.fields[k] = v
	}
	return m
}

func (m *MockObserver) ofType(t EventType) []Event {
	var out []Event
	for _, e := range m.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// captureLogger returns a logr.Logger writing one line per entry into lines.
func captureLogger(lines *[]string, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		*lines = append(*lines, strings.TrimSpace(prefix+" "+args))
	}, funcr.Options{Verbosity: verbosity})
}

func TestLogObserver_Printf(t *testing.T) {
	var lines []string
	observer := NewLogObserver(captureLogger(&lines, 0))

	observer.Printf("test message: %s", "value")

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg"="test message: value"`)
}

func TestLogObserver_Event(t *testing.T) {
	var lines []string
	observer := NewLogObserver(captureLogger(&lines, 0))

	observer.Event(Event{
		Type:     EventResourceCreated,
		Step:     "create-network",
		Resource: "private",
		Message:  "network created",
		Fields: map[string]string{
			"type": "network",
			"id":   "12345",
		},
	})

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"event"="resource.created"`)
	assert.Contains(t, lines[0], `"step"="create-network"`)
	assert.Contains(t, lines[0], `"resource"="private"`)
	assert.Contains(t, lines[0], `"id"="12345"`)
}

func TestLogObserver_FailureIsLoggedAsError(t *testing.T) {
	var lines []string
	observer := NewLogObserver(captureLogger(&lines, 0))

	LogOperationFailed(observer, "create-project", errors.New("conflict"))

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"error"="conflict"`)
	assert.Contains(t, lines[0], `"event"="operation.failed"`)
}

func TestLogOperationFailed_CarriesStepAndResource(t *testing.T) {
	observer := NewMockObserver()
	cause := errors.New("quota exceeded")
	err := &StepError{Step: "create-router", Err: ResourceFailed("router", "router", cause)}

	LogOperationFailed(observer, "init-network", err)

	require.Len(t, observer.events, 1)
	event := observer.events[0]
	assert.Equal(t, "init-network", event.Step)
	assert.Equal(t, "router", event.Resource)
	assert.Equal(t, "create-router", event.Fields["failed_step"])
	assert.Equal(t, "router", event.Fields["type"])
	assert.NotContains(t, event.Fields, "hint")
	assert.ErrorIs(t, event.Err, cause)
	assert.Equal(t, "create-router step failed: quota exceeded", event.Err.Error())
}

func TestLogOperationFailed_ForbiddenHint(t *testing.T) {
	var lines []string
	observer := NewLogObserver(captureLogger(&lines, 0))

	err := fmt.Errorf("user not paired with project: %w", gophercloud.ErrUnexpectedResponseCode{Actual: 403})
	LogOperationFailed(observer, "pair-user-with-project", err)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"hint"="the session lacks the admin role for this call"`)
}

func TestLogObserver_Warning(t *testing.T) {
	var lines []string
	observer := NewLogObserver(captureLogger(&lines, 0))

	LogWarning(observer, "add-ssh-rule", "no security group found")

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"warning"=true`)
}

func TestLogObserver_VerboseEventsNeedDebug(t *testing.T) {
	var quiet, verbose []string

	LogResourceCreating(NewLogObserver(captureLogger(&quiet, 0)), "create-network", "network", "private")
	NewLogObserver(captureLogger(&quiet, 0)).Progress("create-network", 1, 5)
	assert.Empty(t, quiet)

	LogResourceCreating(NewLogObserver(captureLogger(&verbose, 1)), "create-network", "network", "private")
	NewLogObserver(captureLogger(&verbose, 1)).Progress("create-network", 1, 4)
	require.Len(t, verbose, 2)
	assert.Contains(t, verbose[1], `"percent"="25"`)
}

func TestLogObserver_WithFields(t *testing.T) {
	var lines []string
	observer := NewLogObserver(captureLogger(&lines, 0))

	contextual := observer.WithFields(map[string]string{
		"cloud":   "test-cloud",
		"project": "proj1",
	})
	contextual.Event(Event{Type: EventStepCompleted, Step: "resolve-project", Message: "done"})
	observer.Event(Event{Type: EventStepCompleted, Step: "resolve-project", Message: "done"})

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"cloud"="test-cloud"`)
	assert.Contains(t, lines[0], `"project"="proj1"`)
	assert.NotContains(t, lines[1], "test-cloud", "parent observer must not inherit fields")
}

func TestLogObserver_EventFieldsOverrideContext(t *testing.T) {
	var lines []string
	observer := NewLogObserver(captureLogger(&lines, 0)).WithFields(map[string]string{"type": "context"})

	observer.Event(Event{Type: EventResourceCreated, Message: "m", Fields: map[string]string{"type": "router"}})

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"type"="router"`)
}

func TestNewDiscardObserver(t *testing.T) {
	observer := NewDiscardObserver()

	// Should not panic
	observer.Printf("ignored")
	observer.Event(Event{Type: EventOperationFailed, Err: errors.New("ignored")})
	observer.Progress("step", 0, 0)
}

func TestEventType_IsFailure(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      bool
	}{
		{EventOperationFailed, true},
		{EventStepStarted, false},
		{EventStepCompleted, false},
		{EventResourceCreated, false},
		{EventResourceUpdated, false},
		{EventWarning, false},
		{EventProgress, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.eventType.IsFailure())
		})
	}
}

func TestObserver_ImplementsLogger(t *testing.T) {
	var logger Logger
	var observer Observer = NewDiscardObserver()

	logger = observer
	assert.NotNil(t, logger)
}

func TestLogHelpers(t *testing.T) {
	observer := NewMockObserver()

	LogStepStart(observer, "step1")
	LogStepComplete(observer, "step1", time.Second)
	LogResourceCreating(observer, "step2", "router", "router")
	LogResourceCreated(observer, "step2", "router", "router", "id-123")
	LogResourceUpdated(observer, "update-project-status", "project", "demo", "p-1")
	LogOperationFailed(observer, "init-network", assert.AnError)
	LogWarning(observer, "add-ssh-rule", "nothing to do")

	require.Len(t, observer.events, 7)
	assert.Equal(t, EventStepStarted, observer.events[0].Type)
	assert.Equal(t, "completed in 1s", observer.events[1].Message)
	assert.Equal(t, "router", observer.events[2].Fields["type"])
	assert.Equal(t, "id-123", observer.events[3].Fields["id"])
	assert.Equal(t, EventResourceUpdated, observer.events[4].Type)
	assert.Equal(t, "demo", observer.events[4].Resource)
	assert.Equal(t, EventOperationFailed, observer.events[5].Type)
	assert.ErrorIs(t, observer.events[5].Err, assert.AnError)
	assert.Equal(t, EventWarning, observer.events[6].Type)
}
