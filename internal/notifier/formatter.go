package notifier

import (
	"fmt"
	"strings"

	"github.com/aleister1102/stalewatch/internal/models"
)

// Human-readable platform names for message rendering
var platformDisplayNames = map[models.Platform]string{
	models.PlatformMacOS:    "macOS",
	models.PlatformChromeOS: "ChromeOS",
	models.PlatformWindows:  "Windows",
	models.PlatformLinux:    "Linux",
}

// Per-platform update instructions included in every reminder
var platformInstructions = map[models.Platform]string{
	models.PlatformMacOS:    "Open System Settings > General > Software Update and install the pending update.",
	models.PlatformChromeOS: "Open Settings > About ChromeOS > Check for updates, then restart.",
	models.PlatformWindows:  "Open Settings > Windows Update and install the pending update.",
	models.PlatformLinux:    "Run your distribution's package update and reboot if a new kernel was installed.",
}

// FormatStaleReminder renders the reminder text for one stale host. The
// message always names the platform, the observed version, and an actionable
// instruction.
func FormatStaleReminder(event models.NotificationEvent) string {
	platformName := platformDisplayNames[event.Platform]
	if platformName == "" {
		platformName = event.Platform.String()
	}

	instruction := platformInstructions[event.Platform]
	if instruction == "" {
		instruction = "Please install the latest OS update for your device."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your %s device (serial %s) is running %s %s, which is out of date.",
		platformName, event.HardwareSerial, platformName, event.ObservedVersion)
	if len(event.LatestVersions) > 0 {
		fmt.Fprintf(&b, " Current supported versions: %s.", strings.Join(event.LatestVersions, ", "))
	}
	b.WriteString("\n")
	b.WriteString(instruction)
	return b.String()
}
