package convertutils

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// HexBytes is a byte slice that travels as uppercase hex text in SQL columns,
// JSON documents and text encodings.
type HexBytes []byte

// String returns the uppercase hex encoding.
func (h HexBytes) String() string {
	return Hex.FromBytes(h)
}

// Value implements the driver.Valuer interface for SQL database support.
// Returns the bytes as hex text for storage in TEXT columns; nil stores NULL.
func (h HexBytes) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return h.String(), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts hex text as string or []byte, or NULL.
func (h *HexBytes) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*h = nil
		return nil
	case string:
		*h = Hex.ToBytes(v)
		return nil
	case []byte:
		*h = Hex.ToBytes(string(v))
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into HexBytes", value)
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (h *HexBytes) UnmarshalText(text []byte) error {
	*h = Hex.ToBytes(string(text))
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
// Encodes the bytes as a hex string, or null for a nil slice.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("null"), nil
	}
	return json.Marshal(h.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = nil
		return nil
	}

	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return fmt.Errorf("failed to unmarshal HexBytes: %w", err)
	}
	*h = Hex.ToBytes(hexStr)
	return nil
}
