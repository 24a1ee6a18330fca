package directory

import "fmt"

// AuthError indicates credential acquisition against the directory failed.
// This is a configuration or credential problem: no contact can be resolved
// without a token, so the whole run aborts.
type AuthError struct {
	URL    string
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("directory authentication failed at '%s': %s", e.URL, e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// LookupError indicates a device lookup failed for transport or server-side
// reasons unrelated to credentials. Scoped to one host: the host is recorded
// as a resolve failure and the rest of the run continues.
type LookupError struct {
	HardwareSerial string
	URL            string
	Reason         string
	Err            error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("device lookup for '%s' failed at '%s': %s", e.HardwareSerial, e.URL, e.Reason)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ContactNotFoundError indicates the directory answered but the device has no
// assigned contact. A data-hygiene gap for one host; the host is skipped with
// a diagnostic while the rest of the run continues.
type ContactNotFoundError struct {
	HardwareSerial string
	Reason         string
}

func (e *ContactNotFoundError) Error() string {
	return fmt.Sprintf("no contact for device '%s': %s", e.HardwareSerial, e.Reason)
}
