package models

import "strings"

// Platform identifies a host operating system family
type Platform string

const (
	PlatformMacOS    Platform = "macos"
	PlatformChromeOS Platform = "chromeos"
	PlatformWindows  Platform = "windows"
	PlatformLinux    Platform = "linux"
	PlatformUnknown  Platform = ""
)

// ParsePlatform normalizes reporting-backend platform names. osquery-style
// backends report "darwin" for macOS and "chrome" for ChromeOS.
func ParsePlatform(raw string) Platform {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "macos", "darwin":
		return PlatformMacOS
	case "chromeos", "chrome":
		return PlatformChromeOS
	case "windows":
		return PlatformWindows
	case "linux", "ubuntu", "debian", "rhel", "centos", "arch", "fedora":
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}

// String returns the canonical platform name
func (p Platform) String() string {
	return string(p)
}
