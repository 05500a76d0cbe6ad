// Package radix implements positional numeral encoding over a fixed alphabet.
//
// Two alphabets are provided:
//
//   - Base36: digits 0-9 followed by uppercase A-Z. Decoding is
//     case-insensitive, encoding always emits uppercase.
//   - Base62: digits 0-9, uppercase A-Z, then lowercase a-z. Case carries
//     value, so decoding is case-sensitive.
//
// Values are written most-significant digit first without sign or leading
// zero padding; zero encodes to the single symbol "0".
//
//	s, _ := radix.Base62.Encode(3155673600) // "3RYsrI"
//	n, _ := radix.Base62.Decode(s)           // 3155673600
package radix
