package prompt

import (
	"regexp"
	"strconv"
	"strings"
)

// sizePattern matches a size budget string: a number, optional whitespace,
// and an optional unit.
var sizePattern = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*(b|kb|mb|gb)?\s*$`)

// ParseSize converts a human-readable size string ("1mb", "500kb", "2.5gb")
// into a byte count. A bare "b" unit, or no unit at all, means bytes. The
// result must be strictly positive.
func ParseSize(value string) (int64, error) {
	m := sizePattern.FindStringSubmatch(value)
	if m == nil {
		return 0, &InvalidSizeError{Value: value}
	}

	number, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &InvalidSizeError{Value: value}
	}

	var multiplier float64
	switch strings.ToLower(m[2]) {
	case "", "b":
		multiplier = 1
	case "kb":
		multiplier = 1024
	case "mb":
		multiplier = 1024 * 1024
	case "gb":
		multiplier = 1024 * 1024 * 1024
	}

	size := int64(number * multiplier)
	if size <= 0 {
		return 0, &InvalidSizeError{Value: value}
	}
	return size, nil
}
