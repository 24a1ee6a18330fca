package runner

import "fmt"

// GlobalDependencyError indicates a shared upstream dependency failed before
// or during fan-out: version feed, inventory, or directory authentication.
// No meaningful partial evaluation is possible, so the run aborts.
type GlobalDependencyError struct {
	Stage string
	Err   error
}

func (e *GlobalDependencyError) Error() string {
	return fmt.Sprintf("global dependency failure in %s: %v", e.Stage, e.Err)
}

func (e *GlobalDependencyError) Unwrap() error {
	return e.Err
}
