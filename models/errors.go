package models

import "fmt"

// LoadError reports a malformed dataset. It is fatal at startup and rejects
// a reload without disturbing the graph already being served.
type LoadError struct {
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("invalid graph dataset: %s", e.Reason)
}

// UnknownNodeError reports a request referencing a location that is not in
// the graph.
type UnknownNodeError struct {
	Node string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown location %q", e.Node)
}

// InvalidRequestError reports which request field failed validation.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// NoRouteError is the soft "no route found" outcome: the search completed
// but the constraints eliminated every path. It is a normal planning result,
// not a fault.
type NoRouteError struct {
	Reason string
}

func (e *NoRouteError) Error() string {
	return e.Reason
}

// SearchTimeoutError reports that the search exceeded its time budget.
// Callers may retry, ideally with looser constraints.
type SearchTimeoutError struct {
	Budget string
}

func (e *SearchTimeoutError) Error() string {
	return fmt.Sprintf("route search exceeded its time budget of %s", e.Budget)
}
