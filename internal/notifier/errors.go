package notifier

import "fmt"

// DeliveryError indicates a reminder could not be delivered to one contact:
// the contact has no account on the chat platform, or the platform rejected
// the send. Never aborts evaluation of remaining hosts.
type DeliveryError struct {
	Email  string
	Reason string
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to '%s' failed: %s", e.Email, e.Reason)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
