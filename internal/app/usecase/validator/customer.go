package validator

import (
	"regexp"
)

// user- followed by the first segment of a UUID
var customerIDPattern = regexp.MustCompile(`^user-[0-9a-fA-F]{8}$`)

func CustomerIDValidation(customerID string) bool {
	return customerIDPattern.MatchString(customerID)
}
