// Package convertutils converts between text and fixed-width numbers and
// between raw bytes and uppercase hexadecimal text.
//
// Numeric parsing never fails loudly: empty, malformed or out-of-range text
// yields the zero value, or the default passed to ParseOr.
//
//	n := convertutils.ParseInt32("1234")             // 1234
//	s := convertutils.Format(uint8(255))             // "255"
//	p := convertutils.FormatPrec(math.Pi, 16)        // "3.141592653589793"
//
// The hex codec writes into caller-sized buffers:
//
//	dst := make([]byte, convertutils.EncodedLen(len(src)))
//	n, err := convertutils.Hex.Encode(dst, src)
//
// All functions are stateless and safe for concurrent use on disjoint buffers.
package convertutils
