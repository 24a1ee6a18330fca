package models

// HostRecord is one host's observed state as reported by the inventory
// backend. Records are produced fresh each run and discarded at run end.
type HostRecord struct {
	HardwareSerial  string
	ObservedVersion string
	Platform        Platform
}

// Contact is the person responsible for a host, resolved from the device
// directory. Email is a directory identity, not a chat identity; the notifier
// maps it to a chat user explicitly.
type Contact struct {
	Email          string
	HardwareSerial string
}
