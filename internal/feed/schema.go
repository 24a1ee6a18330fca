package feed

import (
	"encoding/json"

	"github.com/aleister1102/stalewatch/internal/models"
)

// Upstream feed documents are externally owned JSON. Each supported format is
// decoded into an explicit schema and validated at this boundary; loosely
// typed structures never propagate inward.

// simpleDocument is the plain feed shape: a flat list of current versions.
type simpleDocument struct {
	Platform string   `json:"platform"`
	Versions []string `json:"versions"`
}

// sofaDocument is the SOFA-style macOS feed shape: one entry per supported
// major-version track, each with its own latest point release.
type sofaDocument struct {
	OSVersions []sofaOSVersion `json:"OSVersions"`
}

type sofaOSVersion struct {
	OSVersion string     `json:"OSVersion"`
	Latest    sofaLatest `json:"Latest"`
}

type sofaLatest struct {
	ProductVersion string `json:"ProductVersion"`
	Build          string `json:"Build"`
}

// decodeSimple parses a simple feed document into a version set
func decodeSimple(body []byte) (models.VersionSet, string, error) {
	var doc simpleDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, "not valid JSON", err
	}
	if len(doc.Versions) == 0 {
		return nil, "missing or empty 'versions' field", nil
	}
	set := models.NewVersionSet(doc.Versions...)
	if len(set) == 0 {
		return nil, "'versions' contains only empty strings", nil
	}
	return set, "", nil
}

// decodeSOFA parses a SOFA-style document into a version set, one current
// version per supported track
func decodeSOFA(body []byte) (models.VersionSet, string, error) {
	var doc sofaDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, "not valid JSON", err
	}
	if len(doc.OSVersions) == 0 {
		return nil, "missing or empty 'OSVersions' field", nil
	}

	set := make(models.VersionSet)
	for _, osv := range doc.OSVersions {
		if osv.Latest.ProductVersion == "" {
			return nil, "track entry missing 'Latest.ProductVersion'", nil
		}
		set[osv.Latest.ProductVersion] = struct{}{}
	}
	return set, "", nil
}
