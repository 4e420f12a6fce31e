package backend

import "errors"

var (
	// ErrNoRuntime indicates that no Runtime was available to bind to.
	ErrNoRuntime = errors.New("no runtime in context")
	// ErrRuntimeClosed indicates that the Runtime has already shut down.
	ErrRuntimeClosed = errors.New("runtime is shut down")
	// ErrWorkerStopped indicates that the consumer task is no longer running.
	ErrWorkerStopped = errors.New("background worker is not running")
	// ErrWorkerClosed indicates use of a Worker handle after Close.
	ErrWorkerClosed = errors.New("worker handle is closed")
)

// FatalError is the value panicked with when the pipeline cannot do what a
// caller has already committed to, such as emitting into a dead worker.
// These conditions are bugs in the surrounding program, not transient
// failures, so they are never returned for the caller to retry.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return "asynclog: " + e.Op + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(op string, err error) {
	panic(&FatalError{Op: op, Err: err})
}
