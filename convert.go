package convertutils

import (
	"reflect"
	"strconv"
	"strings"
)

// Parse converts decimal text to T.
// Returns the zero value if the text is empty, malformed or out of range for T.
func Parse[T Number](s string) T {
	var zero T
	return ParseOr(s, zero)
}

// ParseOr converts decimal text to T, returning def when the text cannot be parsed.
// Surrounding whitespace is ignored and an optional leading sign is accepted.
//
// 8-bit targets are parsed as a 16-bit signed value and then narrowed, so
// "200" parsed as int8 wraps to -56 and "-1" parsed as uint8 wraps to 255.
func ParseOr[T Number](s string, def T) T {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}

	typ := reflect.TypeOf(def)
	switch typ.Kind() {
	case reflect.Int8, reflect.Uint8:
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return def
		}
		return T(int16(v))
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return def
		}
		return T(v)
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := strconv.ParseUint(trimPlus(s), 10, typ.Bits())
		if err != nil {
			return def
		}
		return T(v)
	default:
		v, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return def
		}
		return T(v)
	}
}

// trimPlus drops one leading '+' when a digit follows, which ParseUint rejects.
func trimPlus(s string) string {
	if len(s) > 1 && s[0] == '+' && s[1] >= '0' && s[1] <= '9' {
		return s[1:]
	}
	return s
}

// Format converts v to its canonical decimal text.
// Integers have no grouping or leading zeros; floats use the shortest
// representation that parses back to the same value.
func Format[T Number](v T) string {
	typ := reflect.TypeOf(v)
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(int64(v), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatFloat(float64(v), 'g', -1, typ.Bits())
	}
}

// FormatPrec converts v to text with at most precision significant digits,
// dropping trailing zeros. A negative precision selects the shortest
// representation, a zero precision is treated as one digit.
func FormatPrec[T Float](v T, precision int) string {
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(float64(v), 'g', precision, reflect.TypeOf(v).Bits())
}

// ToString returns s unchanged.
func ToString(s string) string {
	return s
}

// ParseInt8 parses s as an int8, returning 0 on failure.
func ParseInt8(s string) int8 { return Parse[int8](s) }

// ParseUint8 parses s as a uint8, returning 0 on failure.
func ParseUint8(s string) uint8 { return Parse[uint8](s) }

// ParseInt16 parses s as an int16, returning 0 on failure.
func ParseInt16(s string) int16 { return Parse[int16](s) }

// ParseUint16 parses s as a uint16, returning 0 on failure.
func ParseUint16(s string) uint16 { return Parse[uint16](s) }

// ParseInt32 parses s as an int32, returning 0 on failure.
func ParseInt32(s string) int32 { return Parse[int32](s) }

// ParseUint32 parses s as a uint32, returning 0 on failure.
func ParseUint32(s string) uint32 { return Parse[uint32](s) }

// ParseInt64 parses s as an int64, returning 0 on failure.
func ParseInt64(s string) int64 { return Parse[int64](s) }

// ParseUint64 parses s as a uint64, returning 0 on failure.
func ParseUint64(s string) uint64 { return Parse[uint64](s) }

// ParseFloat32 parses s as a float32, returning 0 on failure.
func ParseFloat32(s string) float32 { return Parse[float32](s) }

// ParseFloat64 parses s as a float64, returning 0 on failure.
func ParseFloat64(s string) float64 { return Parse[float64](s) }

// FormatInt8 formats v in base 10.
func FormatInt8(v int8) string { return Format(v) }

// FormatUint8 formats v in base 10.
func FormatUint8(v uint8) string { return Format(v) }

// FormatInt16 formats v in base 10.
func FormatInt16(v int16) string { return Format(v) }

// FormatUint16 formats v in base 10.
func FormatUint16(v uint16) string { return Format(v) }

// FormatInt32 formats v in base 10.
func FormatInt32(v int32) string { return Format(v) }

// FormatUint32 formats v in base 10.
func FormatUint32(v uint32) string { return Format(v) }

// FormatInt64 formats v in base 10.
func FormatInt64(v int64) string { return Format(v) }

// FormatUint64 formats v in base 10.
func FormatUint64(v uint64) string { return Format(v) }

// FormatFloat32 returns the shortest text that parses back to v as a float32.
func FormatFloat32(v float32) string { return Format(v) }

// FormatFloat64 returns the shortest text that parses back to v as a float64.
func FormatFloat64(v float64) string { return Format(v) }

// FormatFloat32Prec formats v with precision significant digits.
func FormatFloat32Prec(v float32, precision int) string { return FormatPrec(v, precision) }

// FormatFloat64Prec formats v with precision significant digits.
func FormatFloat64Prec(v float64, precision int) string { return FormatPrec(v, precision) }
