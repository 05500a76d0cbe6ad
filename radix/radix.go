package radix

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidArgument is returned when a value or string falls outside the
// encoder contract.
var ErrInvalidArgument = errors.New("invalid argument")

const symbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Radix describes a numeral alphabet.
type Radix struct {
	alphabet string
	foldCase bool
}

var (
	// Base36 uses 0-9A-Z.
	Base36 = Radix{alphabet: symbols[:36], foldCase: true}
	// Base62 uses 0-9A-Za-z.
	Base62 = Radix{alphabet: symbols}
)

// Lookup returns the radix with the given symbol count.
func Lookup(size int) (Radix, error) {
	switch size {
	case 36:
		return Base36, nil
	case 62:
		return Base62, nil
	}
	return Radix{}, fmt.Errorf("%w: unsupported radix %d, expected 36 or 62", ErrInvalidArgument, size)
}

// Size returns the number of symbols in the alphabet, 0 for the zero Radix.
func (r Radix) Size() int { return len(r.alphabet) }

// Zero returns the symbol representing digit zero.
func (r Radix) Zero() byte { return symbols[0] }

func (r Radix) String() string {
	if r.Size() == 0 {
		return "radix(invalid)"
	}
	return fmt.Sprintf("base%d", r.Size())
}

// Encode formats a non-negative value.
func (r Radix) Encode(value int64) (string, error) {
	if value < 0 {
		return "", fmt.Errorf("%w: cannot encode negative value %d", ErrInvalidArgument, value)
	}
	if r.Size() == 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, r)
	}
	return r.EncodeUint(uint64(value)), nil
}

// EncodeUint formats value; it panics on the zero Radix.
func (r Radix) EncodeUint(value uint64) string {
	if value == 0 {
		return r.alphabet[:1]
	}
	base := uint64(len(r.alphabet))
	// 64 digits covers uint64 in the smallest supported base
	var buf [64]byte
	i := len(buf)
	for value > 0 {
		i--
		buf[i] = r.alphabet[value%base]
		value /= base
	}
	return string(buf[i:])
}

// Decode parses symbols produced by Encode.
func (r Radix) Decode(s string) (int64, error) {
	if r.Size() == 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, r)
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty %v numeral", ErrInvalidArgument, r)
	}
	base := int64(r.Size())
	var value int64
	for i := 0; i < len(s); i++ {
		digit := r.digit(s[i])
		if digit < 0 {
			return 0, fmt.Errorf("%w: symbol %q at %d is not %v", ErrInvalidArgument, s[i], i, r)
		}
		if value > (math.MaxInt64-digit)/base {
			return 0, fmt.Errorf("%w: %v numeral %q overflows int64", ErrInvalidArgument, r, s)
		}
		value = value*base + digit
	}
	return value, nil
}

// Valid reports whether s is a non-empty numeral in this alphabet.
func (r Radix) Valid(s string) bool {
	if s == "" || r.Size() == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if r.digit(s[i]) < 0 {
			return false
		}
	}
	return true
}

// MaxValue returns size^digits, the count of distinct values representable
// in the given number of digits.
func (r Radix) MaxValue(digits int) int64 {
	if digits < 0 {
		return 0
	}
	result := int64(1)
	for i := 0; i < digits; i++ {
		result *= int64(r.Size())
	}
	return result
}

func (r Radix) digit(c byte) int64 {
	if r.foldCase && c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	idx := strings.IndexByte(r.alphabet, c)
	return int64(idx)
}
