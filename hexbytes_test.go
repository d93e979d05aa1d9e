package convertutils

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestHexBytes_String(t *testing.T) {
	assert.Equal(t, "DEADBEEF", HexBytes{0xDE, 0xAD, 0xBE, 0xEF}.String())
	assert.Equal(t, "", HexBytes(nil).String())
}

func TestHexBytes_Value(t *testing.T) {
	v, err := HexBytes{0x01, 0xAB}.Value()
	require.NoError(t, err)
	assert.Equal(t, "01AB", v)

	v, err = HexBytes(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestHexBytes_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    HexBytes
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"string", "01ab", HexBytes{0x01, 0xAB}, false},
		{"bytes", []byte("FF00"), HexBytes{0xFF, 0x00}, false},
		{"empty string", "", HexBytes{}, false},
		{"int64 invalid type", int64(5), nil, true},
		{"float invalid type", 3.14, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h HexBytes
			err := h.Scan(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h)
		})
	}
}

func TestHexBytes_JSON(t *testing.T) {
	type payload struct {
		Key  HexBytes `json:"key"`
		Salt HexBytes `json:"salt"`
	}

	data, err := json.Marshal(payload{Key: HexBytes{0xCA, 0xFE}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"CAFE","salt":null}`, string(data))

	var got payload
	require.NoError(t, json.Unmarshal([]byte(`{"key":"cafe","salt":null}`), &got))
	assert.Equal(t, HexBytes{0xCA, 0xFE}, got.Key)
	assert.Nil(t, got.Salt)

	assert.Error(t, json.Unmarshal([]byte(`{"key":12}`), &got))
}

func TestHexBytes_Text(t *testing.T) {
	text, err := HexBytes("Z1").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "5A31", string(text))

	var h HexBytes
	require.NoError(t, h.UnmarshalText(text))
	assert.Equal(t, HexBytes("Z1"), h)
}

func TestHexBytes_SQLiteRoundtrip(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE payloads (id INTEGER PRIMARY KEY, data TEXT)`)
	require.NoError(t, err)

	tests := []struct {
		name  string
		id    int
		value HexBytes
		raw   sql.NullString
	}{
		{"bytes", 1, HexBytes{0xDE, 0xAD, 0xBE, 0xEF}, sql.NullString{String: "DEADBEEF", Valid: true}},
		{"text", 2, HexBytes("ABCDEFXYZ123456"), sql.NullString{String: "41424344454658595A313233343536", Valid: true}},
		{"null", 3, nil, sql.NullString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Exec(`INSERT INTO payloads (id, data) VALUES (?, ?)`, tt.id, tt.value)
			require.NoError(t, err)

			var raw sql.NullString
			require.NoError(t, db.QueryRow(`SELECT data FROM payloads WHERE id = ?`, tt.id).Scan(&raw))
			assert.Equal(t, tt.raw, raw)

			var scanned HexBytes
			require.NoError(t, db.QueryRow(`SELECT data FROM payloads WHERE id = ?`, tt.id).Scan(&scanned))
			assert.Equal(t, tt.value, scanned)
		})
	}
}
