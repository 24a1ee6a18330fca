package inventory

import "fmt"

// InventoryUnavailableError indicates the reporting backend could not be
// queried: transport failure, auth rejection, or an unparseable response.
// No meaningful evaluation is possible without inventory, so this aborts
// the run.
type InventoryUnavailableError struct {
	URL    string
	Reason string
	Err    error
}

func (e *InventoryUnavailableError) Error() string {
	return fmt.Sprintf("inventory backend unavailable at '%s': %s", e.URL, e.Reason)
}

func (e *InventoryUnavailableError) Unwrap() error {
	return e.Err
}
