package xmlpack

import (
	"crypto/rand"
	"encoding/base64"
)

// GUID is the 128-bit marker/trail identifier used for activation tracking.
type GUID [16]byte

// String renders the GUID as standard base64 (not the pack's truncated
// 20-byte form) for logging and JSON persistence.
func (g GUID) String() string {
	return base64.StdEncoding.EncodeToString(g[:])
}

// NewGUID mints a fresh random 128-bit id, used when a POI/Trail tag has no
// GUID attribute, or when rewriting a duplicate (spec section 3's
// "duplicates are rewritten to fresh values during load").
func NewGUID() GUID {
	var g GUID
	_, _ = rand.Read(g[:]) // crypto/rand.Read never errors on the standard Reader
	return g
}

// ParseGUID decodes the standard 16-byte base64 form produced by
// GUID.String, as opposed to decodeGUID's 20-byte pack-attribute form.
// Used when reloading persisted state (packstore) that stored GUIDs via
// String().
func ParseGUID(s string) (GUID, bool) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(decoded) != 16 {
		return GUID{}, false
	}
	var g GUID
	copy(g[:], decoded)
	return g, true
}

// decodeGUID decodes a pack's base64 GUID attribute. Community packs write
// a base64 string that decodes to a 20-byte buffer; only the first 16 bytes
// are the actual GUID (spec section 4.2.6 / section 8's boundary case). A
// malformed or short string yields ok=false so the caller mints a fresh id.
func decodeGUID(s string) (GUID, bool) {
	if s == "" {
		return GUID{}, false
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// Community packs sometimes omit padding; retry with raw encoding.
		decoded, err = base64.RawStdEncoding.DecodeString(s)
		if err != nil {
			return GUID{}, false
		}
	}
	if len(decoded) < 16 {
		return GUID{}, false
	}
	var g GUID
	copy(g[:], decoded[:16])
	return g, true
}
