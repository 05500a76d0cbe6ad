// Package clock supplies the current time and local date-time helpers.
package clock

import (
	"fmt"
	"time"
)

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Naive keeps the wall-clock fields of t and drops its location, so two
// instants compare by what a local clock would have shown.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

var layouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse reads a local date-time such as 2022-01-01T00:00:00. RFC3339 input is
// accepted too; its zone is discarded and the wall-clock fields kept.
func Parse(value string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return Naive(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q, expected 2006-01-02T15:04:05", value)
}
