package usecases

import "github.com/microcosm-cc/bluemonday"

// descriptionPolicy strips all HTML from user-supplied text before it is
// persisted. Descriptions are plain text; markup is never rendered back.
var descriptionPolicy = bluemonday.StrictPolicy()

func sanitizeDescription(description string) string {
	return descriptionPolicy.Sanitize(description)
}
