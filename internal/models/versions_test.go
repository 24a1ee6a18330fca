package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionSet_Contains(t *testing.T) {
	set := NewVersionSet("14.5", "13.7.1")

	assert.True(t, set.Contains("14.5"))
	assert.True(t, set.Contains("13.7.1"))
	assert.False(t, set.Contains("14.4"))
	assert.False(t, set.Contains(""))
}

func TestVersionSet_DropsEmptyVersions(t *testing.T) {
	set := NewVersionSet("", "14.5")
	assert.Len(t, set, 1)
}

func TestLatestVersionSet_Merge(t *testing.T) {
	lvs := make(LatestVersionSet)
	lvs.Merge(PlatformMacOS, NewVersionSet("14.5"))
	lvs.Merge(PlatformMacOS, NewVersionSet("13.7.1"))

	assert.True(t, lvs.Contains(PlatformMacOS, "14.5"))
	assert.True(t, lvs.Contains(PlatformMacOS, "13.7.1"))
	assert.False(t, lvs.Contains(PlatformChromeOS, "14.5"))
}

func TestLatestVersionSet_HasPlatform(t *testing.T) {
	lvs := make(LatestVersionSet)
	assert.False(t, lvs.HasPlatform(PlatformMacOS))

	lvs.Merge(PlatformMacOS, NewVersionSet())
	assert.False(t, lvs.HasPlatform(PlatformMacOS), "empty set must not count as a known platform")

	lvs.Merge(PlatformMacOS, NewVersionSet("14.5"))
	assert.True(t, lvs.HasPlatform(PlatformMacOS))
}

func TestParsePlatform(t *testing.T) {
	assert.Equal(t, PlatformMacOS, ParsePlatform("darwin"))
	assert.Equal(t, PlatformMacOS, ParsePlatform("macOS"))
	assert.Equal(t, PlatformChromeOS, ParsePlatform("chrome"))
	assert.Equal(t, PlatformLinux, ParsePlatform("ubuntu"))
	assert.Equal(t, PlatformUnknown, ParsePlatform("beos"))
}
