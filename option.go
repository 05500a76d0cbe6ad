package shortid

import (
	"time"

	"github.com/viant/shortid/radix"
)

// Option customises a Generator.
type Option func(g *Generator)

// WithOffset sets the reference instant; its location is ignored.
func WithOffset(offset time.Time) Option {
	return func(g *Generator) {
		g.offset = offset
	}
}

// WithStart sets the initial counter value. The first identifier uses start+1.
func WithStart(start int64) Option {
	return func(g *Generator) {
		g.start = start
	}
}

// WithRate sets the throughput class.
func WithRate(rate Rate) Option {
	return func(g *Generator) {
		g.rate = rate
	}
}

// WithRadix sets the numeral alphabet for both prefix and suffix.
func WithRadix(r radix.Radix) Option {
	return func(g *Generator) {
		g.radix = r
	}
}

// WithPrefix sets the literal prefix used by Next.
func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		g.prefix = prefix
	}
}

// WithClock replaces the time source used by Next.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}
