package shortid

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/viant/shortid/internal/clock"
	"github.com/viant/shortid/radix"
)

// DefaultOffset is the reference instant used when none is configured.
var DefaultOffset = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generator produces identifiers. It is safe for concurrent use; the only
// shared state is an atomic counter.
type Generator struct {
	offset  time.Time
	start   int64
	rate    Rate
	radix   radix.Radix
	prefix  string
	now     func() time.Time
	digits  int
	modulus uint64
	counter atomic.Uint64
}

// Parts is a decomposed identifier.
type Parts struct {
	Prefix   string
	Time     time.Time
	Sequence int64
}

// New creates a Generator; unset options fall back to Default values.
func New(options ...Option) (*Generator, error) {
	ret := &Generator{
		offset: DefaultOffset,
		rate:   RateHigh,
		radix:  radix.Base62,
		now:    clock.Now,
	}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Default returns a Generator with offset 2022-01-01T00:00:00, start 0,
// RateHigh and base 62.
func Default() *Generator {
	ret, err := New()
	if err != nil {
		panic(err)
	}
	return ret
}

func (g *Generator) init() error {
	if g.start < 0 {
		return fmt.Errorf("%w: negative start value %d", ErrInvalidArgument, g.start)
	}
	g.digits = g.rate.Digits()
	if g.digits == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, g.rate)
	}
	if _, err := radix.Lookup(g.radix.Size()); err != nil {
		return err
	}
	if g.now == nil {
		g.now = clock.Now
	}
	g.offset = clock.Naive(g.offset)
	g.modulus = uint64(g.radix.MaxValue(g.digits))
	g.counter.Store(uint64(g.start))
	return nil
}

// Generate returns an identifier for the given instant without a literal prefix.
func (g *Generator) Generate(at time.Time) (string, error) {
	return g.GenerateWithPrefix("", at)
}

// GenerateWithPrefix returns prefix followed by the encoded elapsed seconds
// and the zero-padded counter suffix. An instant before the offset fails with
// ErrInvalidArgument and leaves the counter untouched.
func (g *Generator) GenerateWithPrefix(prefix string, at time.Time) (string, error) {
	seconds, err := g.elapsed(at)
	if err != nil {
		return "", err
	}
	sequence := g.counter.Add(1) % g.modulus
	suffix := PadLeft(g.radix.EncodeUint(sequence), g.digits)

	var b strings.Builder
	b.Grow(len(prefix) + 8 + g.digits)
	b.WriteString(prefix)
	b.WriteString(g.radix.EncodeUint(uint64(seconds)))
	b.WriteString(suffix)
	return b.String(), nil
}

// Next generates an identifier with the configured prefix at the current time.
func (g *Generator) Next() (string, error) {
	return g.GenerateWithPrefix(g.prefix, g.now())
}

// MaxIDsPerSecond returns the number of distinct suffixes before wraparound.
func (g *Generator) MaxIDsPerSecond() int64 {
	return int64(g.modulus)
}

// Parse splits an identifier produced with the given literal prefix back into
// the instant (second precision) and the suffix sequence.
func (g *Generator) Parse(id, prefix string) (*Parts, error) {
	if !strings.HasPrefix(id, prefix) {
		return nil, fmt.Errorf("%w: %q does not start with prefix %q", ErrInvalidArgument, id, prefix)
	}
	rest := id[len(prefix):]
	if len(rest) <= g.digits {
		return nil, fmt.Errorf("%w: %q is too short for a %v identifier", ErrInvalidArgument, id, g.rate)
	}
	split := len(rest) - g.digits
	seconds, err := g.radix.Decode(rest[:split])
	if err != nil {
		return nil, fmt.Errorf("failed to decode time of %q: %w", id, err)
	}
	sequence, err := g.radix.Decode(rest[split:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode suffix of %q: %w", id, err)
	}
	return &Parts{
		Prefix:   prefix,
		Time:     time.Unix(g.offset.Unix()+seconds, int64(g.offset.Nanosecond())).UTC(),
		Sequence: sequence,
	}, nil
}

// Offset returns the reference instant with its location normalised to UTC.
func (g *Generator) Offset() time.Time { return g.offset }

// Rate returns the throughput class.
func (g *Generator) Rate() Rate { return g.rate }

// Radix returns the numeral alphabet.
func (g *Generator) Radix() radix.Radix { return g.radix }

// PadLeft prepends "0" until s is width symbols long. Longer input is
// returned unchanged.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(radix.Base62.Zero()), width-len(s)) + s
}

func (g *Generator) elapsed(at time.Time) (int64, error) {
	at = clock.Naive(at)
	if at.Before(g.offset) {
		return 0, fmt.Errorf("%w: %v is before offset %v",
			ErrInvalidArgument, at.Format(layout), g.offset.Format(layout))
	}
	seconds := at.Unix() - g.offset.Unix()
	if at.Nanosecond() < g.offset.Nanosecond() {
		seconds--
	}
	return seconds, nil
}

const layout = "2006-01-02T15:04:05.999999999"
