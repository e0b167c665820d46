package validator

import (
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

// carbon resolves these against the current clock; a search bound has to be
// an absolute date.
var relativeWords = map[string]struct{}{
	"now":       {},
	"yesterday": {},
	"tomorrow":  {},
}

// ParseDate accepts ISO-8601 dates and date-times. Values without an explicit
// offset are read as UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return time.Time{}, false
	}

	if _, ok := relativeWords[strings.ToLower(value)]; ok {
		return time.Time{}, false
	}

	date := carbon.Parse(value, carbon.UTC)
	if date.Error != nil || date.IsInvalid() {
		return time.Time{}, false
	}

	return date.StdTime().UTC(), true
}
