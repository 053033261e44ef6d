package openstack

import (
	"errors"
	"fmt"
)

// LookupState is the outcome of a lookup by name.
type LookupState int

const (
	// LookupFailed means the remote call failed; the resource may or may not exist.
	LookupFailed LookupState = iota
	// LookupFound means exactly the named resource was returned.
	LookupFound
	// LookupNotFound means the API answered 404 or returned no matching resource.
	LookupNotFound
)

// String implements fmt.Stringer.
func (s LookupState) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not found"
	default:
		return "failed"
	}
}

var errLookupIncomplete = errors.New("lookup did not complete")

// Lookup is the result of resolving a resource by name.
// The zero value is a failed lookup.
type Lookup[T any] struct {
	State    LookupState
	Resource T
	Err      error
}

// Found returns a successful lookup.
func Found[T any](resource T) Lookup[T] {
	return Lookup[T]{State: LookupFound, Resource: resource}
}

// NotFound returns a lookup for a resource that does not exist.
func NotFound[T any]() Lookup[T] {
	return Lookup[T]{State: LookupNotFound}
}

// Failed returns a lookup that could not be answered.
func Failed[T any](err error) Lookup[T] {
	return Lookup[T]{State: LookupFailed, Err: err}
}

// Get returns the resource or an error describing why there is none.
// A missing resource yields an error wrapping ErrNotFound.
func (l Lookup[T]) Get(kind, name string) (T, error) {
	var zero T
	switch l.State {
	case LookupFound:
		return l.Resource, nil
	case LookupNotFound:
		return zero, fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
	}
	err := l.Err
	if err == nil {
		err = errLookupIncomplete
	}
	return zero, fmt.Errorf("failed to look up %s %q: %w", kind, name, err)
}

// lookupFromList builds a lookup from a list call. The API may ignore name
// filters, so the list is scanned for an exact match.
func lookupFromList[T any](items []T, err error, name string, nameOf func(*T) string) Lookup[*T] {
	if err != nil {
		if IsNotFound(err) {
			return NotFound[*T]()
		}
		return Failed[*T](err)
	}
	for i := range items {
		if nameOf(&items[i]) == name {
			return Found(&items[i])
		}
	}
	return NotFound[*T]()
}
