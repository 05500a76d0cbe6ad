// Package shortid generates short, time-ordered identifiers that are unique
// within a single process as long as generation stays below a configured
// per-second ceiling.
//
// An identifier is the concatenation of:
//
//   - an optional literal prefix supplied by the caller,
//   - the whole seconds elapsed since the generator's offset, in base 36 or 62,
//   - a fixed-width counter suffix (2 digits for RateLow, 3 for RateHigh).
//
// No separators are used; the suffix width is what splits the parts apart.
//
//	gen := shortid.Default()
//	id, _ := gen.Generate(time.Date(2122, 1, 1, 0, 0, 0, 0, time.UTC)) // "3RYsrI001"
//
// The counter wraps at radix^digits. Exceeding MaxIDsPerSecond within one
// second repeats suffixes and may yield duplicate identifiers; this is not
// reported as an error.
//
// Identifiers are not coordinated across processes and the counter restarts
// from its start value on construction.
package shortid
