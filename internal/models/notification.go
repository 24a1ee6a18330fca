package models

// NotificationEvent carries everything the notifier needs to remind one
// contact about one stale host. It exists only for the duration of the send.
type NotificationEvent struct {
	Contact         Contact
	HardwareSerial  string
	ObservedVersion string
	Platform        Platform
	LatestVersions  []string
}
