package models

import "sort"

// VersionSet is a set of version strings considered current for one platform.
// Membership is exact: platforms commonly keep several supported major-version
// tracks alive at once, each with its own latest point release.
type VersionSet map[string]struct{}

// NewVersionSet creates a VersionSet from the given versions
func NewVersionSet(versions ...string) VersionSet {
	set := make(VersionSet, len(versions))
	for _, v := range versions {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// Contains reports whether version is a member of the set
func (vs VersionSet) Contains(version string) bool {
	_, ok := vs[version]
	return ok
}

// Versions returns the members sorted lexicographically, for logging
func (vs VersionSet) Versions() []string {
	versions := make([]string, 0, len(vs))
	for v := range vs {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// LatestVersionSet maps each platform to its set of current versions.
// Fetched once per run and read-only afterwards.
type LatestVersionSet map[Platform]VersionSet

// Merge adds versions for a platform, unioning with any existing entry
func (lvs LatestVersionSet) Merge(platform Platform, versions VersionSet) {
	existing, ok := lvs[platform]
	if !ok {
		existing = make(VersionSet, len(versions))
		lvs[platform] = existing
	}
	for v := range versions {
		existing[v] = struct{}{}
	}
}

// HasPlatform reports whether the platform has a non-empty version set
func (lvs LatestVersionSet) HasPlatform(platform Platform) bool {
	set, ok := lvs[platform]
	return ok && len(set) > 0
}

// Contains reports whether version is current for platform
func (lvs LatestVersionSet) Contains(platform Platform, version string) bool {
	set, ok := lvs[platform]
	if !ok {
		return false
	}
	return set.Contains(version)
}
