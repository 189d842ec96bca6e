package validation

import "regexp"

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	cardNumberRegex = regexp.MustCompile(`^[0-9]{16}$`)
)
