package evaluator

import (
	"testing"

	"github.com/aleister1102/stalewatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func macOSTracks() models.LatestVersionSet {
	lvs := make(models.LatestVersionSet)
	lvs.Merge(models.PlatformMacOS, models.NewVersionSet("14.5", "13.7.1"))
	return lvs
}

func TestEvaluate_MemberIsCurrent(t *testing.T) {
	latest := macOSTracks()

	assert.Equal(t, VerdictCurrent, Evaluate("14.5", models.PlatformMacOS, latest))
	assert.Equal(t, VerdictCurrent, Evaluate("13.7.1", models.PlatformMacOS, latest),
		"latest point release of an older supported track is not stale")
}

func TestEvaluate_NonMemberIsStale(t *testing.T) {
	latest := macOSTracks()

	assert.Equal(t, VerdictStale, Evaluate("14.4", models.PlatformMacOS, latest))
	assert.Equal(t, VerdictStale, Evaluate("13.7", models.PlatformMacOS, latest))
	// Numerically newer than every member but absent from the set: still stale.
	// Membership, not ordering, is the rule.
	assert.Equal(t, VerdictStale, Evaluate("15.0", models.PlatformMacOS, latest))
}

func TestEvaluate_UnknownPlatformIsIndeterminate(t *testing.T) {
	latest := macOSTracks()

	verdict := Evaluate("120.0", models.PlatformChromeOS, latest)
	assert.Equal(t, VerdictUnknownPlatform, verdict)
	assert.NotEqual(t, VerdictStale, verdict)
	assert.NotEqual(t, VerdictCurrent, verdict)
}

func TestEvaluate_EmptySetIsIndeterminate(t *testing.T) {
	lvs := make(models.LatestVersionSet)
	lvs.Merge(models.PlatformWindows, models.NewVersionSet())

	assert.Equal(t, VerdictUnknownPlatform, Evaluate("10.0.19045", models.PlatformWindows, lvs))
}

func TestEvaluate_MultiTrackScenario(t *testing.T) {
	latest := macOSTracks()
	hosts := []struct {
		serial  string
		version string
		want    Verdict
	}{
		{"A", "14.5", VerdictCurrent},
		{"B", "14.4", VerdictStale},
		{"C", "13.7.1", VerdictCurrent},
	}

	for _, h := range hosts {
		got := Evaluate(h.version, models.PlatformMacOS, latest)
		assert.Equalf(t, h.want, got, "serial %s version %s", h.serial, h.version)
	}
}
