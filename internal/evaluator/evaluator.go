package evaluator

import "github.com/aleister1102/stalewatch/internal/models"

// Verdict is the three-valued outcome of a staleness evaluation. Unknown
// platforms are surfaced distinctly so callers can log-and-skip instead of
// treating them as either extreme.
type Verdict int

const (
	VerdictCurrent Verdict = iota
	VerdictStale
	VerdictUnknownPlatform
)

// String returns string representation of Verdict
func (v Verdict) String() string {
	switch v {
	case VerdictCurrent:
		return "current"
	case VerdictStale:
		return "stale"
	case VerdictUnknownPlatform:
		return "unknown_platform"
	default:
		return "invalid"
	}
}

// Evaluate decides whether an observed version is stale for its platform.
//
// The rule is exact set membership, never an ordering comparison: a host on
// an older but still-supported track's latest point release is current, while
// a host one patch behind on any track is stale. Comparing against the single
// greatest version would wrongly flag every host on a supported older track.
func Evaluate(observedVersion string, platform models.Platform, latest models.LatestVersionSet) Verdict {
	if !latest.HasPlatform(platform) {
		return VerdictUnknownPlatform
	}
	if latest.Contains(platform, observedVersion) {
		return VerdictCurrent
	}
	return VerdictStale
}
