// Package idgen produces universally unique identifiers. The CLI uses them
// as a length reference next to short identifiers; NewFunc can be stubbed in
// tests.
package idgen
