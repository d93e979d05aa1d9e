package convertutils

// hexTable maps a nibble to its uppercase hex digit.
const hexTable = "0123456789ABCDEF"

// Hex provides uppercase hex encoding and lenient decoding helpers.
var Hex = hexHelpers{}

type hexHelpers struct{}

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the number of bytes decoded from n hex characters.
// A trailing odd character is not decoded.
func DecodedLen(n int) int { return n / 2 }

// Encode writes the uppercase hex encoding of src into dst and returns the
// number of bytes written. dst must hold at least EncodedLen(len(src)) bytes.
// A nil src or dst is rejected with ErrInvalidArgument.
func (hexHelpers) Encode(dst, src []byte) (int, error) {
	if err := checkBuffers(dst, src); err != nil {
		return 0, err
	}
	if len(src) == 0 {
		return 0, nil
	}

	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, &ArgumentError{Arg: "dst", Err: ErrShortBuffer}
	}

	encodeHex(dst, src)
	return n, nil
}

// Decode writes the bytes encoded by the hex text in src into dst and returns
// the number of bytes written. dst must hold at least DecodedLen(len(src)) bytes.
//
// Characters are not validated: any character above '9' is shifted by 9
// before its low nibble is taken, which maps both 'A'-'F' and 'a'-'f' to
// 10-15 and maps anything else to an arbitrary nibble.
func (hexHelpers) Decode(dst, src []byte) (int, error) {
	if err := checkBuffers(dst, src); err != nil {
		return 0, err
	}
	if len(src) == 0 {
		return 0, nil
	}

	n := DecodedLen(len(src))
	if len(dst) < n {
		return 0, &ArgumentError{Arg: "dst", Err: ErrShortBuffer}
	}

	decodeHex(dst, src)
	return n, nil
}

// FromBytes converts bytes to an uppercase hex string.
func (hexHelpers) FromBytes(bytes []byte) string {
	if len(bytes) == 0 {
		return ""
	}
	dst := make([]byte, EncodedLen(len(bytes)))
	encodeHex(dst, bytes)
	return string(dst)
}

// ToBytes decodes hex text into a new byte slice without validation.
// A trailing odd character is ignored.
func (hexHelpers) ToBytes(hexStr string) []byte {
	dst := make([]byte, DecodedLen(len(hexStr)))
	decodeHex(dst, []byte(hexStr))
	return dst
}

func checkBuffers(dst, src []byte) error {
	if src == nil {
		return &ArgumentError{Arg: "src", Err: ErrInvalidArgument}
	}
	if dst == nil {
		return &ArgumentError{Arg: "dst", Err: ErrInvalidArgument}
	}
	return nil
}

func encodeHex(dst, src []byte) {
	for i, b := range src {
		dst[i*2] = hexTable[b>>4]
		dst[i*2+1] = hexTable[b&0x0f]
	}
}

func decodeHex(dst, src []byte) {
	for i := range DecodedLen(len(src)) {
		hi := hexDigit(src[i*2])
		lo := hexDigit(src[i*2+1])
		dst[i] = hi<<4 | lo&0x0f
	}
}

// hexDigit applies the letter shift; the caller keeps only the low nibble.
func hexDigit(c byte) byte {
	if c > '9' {
		c += 9
	}
	return c
}
