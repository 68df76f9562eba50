// Package validate checks raw text input before it reaches a builder.
// Both functions are pure and return *types.ValidationError on failure.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

// Number parses raw as a base-10 integer and checks that it lies in
// [min, max]. Surrounding whitespace is ignored; anything else that is not
// part of the integer (such as "4abc" or "4.5") is rejected.
func Number(raw string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < min || n > max {
		return 0, &types.ValidationError{
			Input:   raw,
			Message: fmt.Sprintf("Please enter a number between %d and %d", min, max),
		}
	}
	return n, nil
}

// YesNo maps y/yes to true and n/no to false, ignoring case and
// surrounding whitespace.
func YesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, &types.ValidationError{
		Input:   raw,
		Message: "Please enter y/yes or n/no",
	}
}

// InRange is Number bounded by a configured types.Range.
func InRange(raw string, r types.Range) (int, error) {
	return Number(raw, r.Min, r.Max)
}
