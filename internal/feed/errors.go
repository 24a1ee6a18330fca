package feed

import (
	"fmt"

	"github.com/aleister1102/stalewatch/internal/models"
)

// FeedUnavailableError indicates the upstream feed could not be reached or
// returned a non-success status. Callers must treat the affected platform as
// "cannot evaluate this run", never as "no hosts are stale".
type FeedUnavailableError struct {
	Platform models.Platform
	URL      string
	Err      error
}

func (e *FeedUnavailableError) Error() string {
	return fmt.Sprintf("version feed for %s unavailable at '%s': %v", e.Platform, e.URL, e.Err)
}

func (e *FeedUnavailableError) Unwrap() error {
	return e.Err
}

// FeedParseError indicates the feed responded but the document does not match
// the expected schema. The adapter never fabricates a default set.
type FeedParseError struct {
	Platform models.Platform
	URL      string
	Reason   string
	Err      error
}

func (e *FeedParseError) Error() string {
	return fmt.Sprintf("version feed for %s at '%s' unparseable: %s", e.Platform, e.URL, e.Reason)
}

func (e *FeedParseError) Unwrap() error {
	return e.Err
}
