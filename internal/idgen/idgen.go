package idgen

import "github.com/google/uuid"

// NewFunc returns a random (version 4) UUID in its canonical 36 character form.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new UUID string.
func New() string { return NewFunc() }

// Valid reports whether s parses as a UUID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
