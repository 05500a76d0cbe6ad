package shortid

import (
	"fmt"
	"strings"
)

// Rate is the expected throughput class; it fixes the suffix width.
type Rate uint8

const (
	// RateLow reserves 2 suffix digits (3,844 ids/s in base 62).
	RateLow Rate = iota + 1
	// RateHigh reserves 3 suffix digits (238,328 ids/s in base 62).
	RateHigh
)

// Digits returns the suffix width, 0 for an unknown rate.
func (r Rate) Digits() int {
	switch r {
	case RateLow:
		return 2
	case RateHigh:
		return 3
	}
	return 0
}

func (r Rate) String() string {
	switch r {
	case RateLow:
		return "low"
	case RateHigh:
		return "high"
	}
	return fmt.Sprintf("rate(%d)", uint8(r))
}

// ParseRate converts "low" or "high" (any case).
func ParseRate(value string) (Rate, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return RateLow, nil
	case "high":
		return RateHigh, nil
	}
	return 0, fmt.Errorf("%w: unknown rate %q, expected low or high", ErrInvalidArgument, value)
}
