package idutil

import (
	"regexp"

	"github.com/google/uuid"
)

// canonicalID is the strict hyphenated-hex format required before any
// gateway call involving a club or user id. Historical seed ids like
// "1" or "u3" never pass it and are treated as permanently invalid.
var canonicalID = regexp.MustCompile(
	`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`,
)

func Valid(id string) bool {
	return canonicalID.MatchString(id)
}

func New() string {
	return uuid.NewString()
}
