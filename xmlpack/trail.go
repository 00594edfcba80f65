package xmlpack

import (
	"encoding/binary"
	"fmt"
	"math"
)

// decodeTbin parses a .trl file's bytes into a Tbin (spec section 4.2.5).
// Layout: 4-byte version, 4-byte map id, then any number of 12-byte
// (x,y,z float32) points. A version/map_id order swap was a known bug in
// some pack-authoring tools' output; DESIGN.md's Open Question (a)
// resolves this as version-then-map_id, matching the format the game's
// own trail exporter writes.
func decodeTbin(buf []byte) (Tbin, error) {
	if len(buf) < 8 {
		return Tbin{}, fmt.Errorf("tbin too short: %d bytes", len(buf))
	}
	if (len(buf)-8)%12 != 0 {
		return Tbin{}, fmt.Errorf("tbin body length %d is not a multiple of 12", len(buf)-8)
	}
	mapID := binary.LittleEndian.Uint32(buf[4:8])
	body := buf[8:]
	points := make([]Vec3, 0, len(body)/12)
	for off := 0; off+12 <= len(body); off += 12 {
		points = append(points, Vec3{
			X: math.Float32frombits(binary.LittleEndian.Uint32(body[off : off+4])),
			Y: math.Float32frombits(binary.LittleEndian.Uint32(body[off+4 : off+8])),
			Z: math.Float32frombits(binary.LittleEndian.Uint32(body[off+8 : off+12])),
		})
	}
	return Tbin{MapID: mapID, Points: points}, nil
}
