package xmlpack

import (
	"encoding/binary"
	"math"
	"testing"
)

func tbinBuf(mapID uint32, points []Vec3) []byte {
	buf := make([]byte, 8+len(points)*12)
	binary.LittleEndian.PutUint32(buf[0:4], 1) // version
	binary.LittleEndian.PutUint32(buf[4:8], mapID)
	off := 8
	for _, p := range points {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(p.Y))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(p.Z))
		off += 12
	}
	return buf
}

func TestDecodeTbinMinimalEightBytes(t *testing.T) {
	buf := tbinBuf(15, nil)
	tbin, err := decodeTbin(buf)
	if err != nil {
		t.Fatalf("decodeTbin: %v", err)
	}
	if tbin.MapID != 15 {
		t.Errorf("MapID = %d, want 15", tbin.MapID)
	}
	if len(tbin.Points) != 0 {
		t.Errorf("expected zero points for an 8-byte tbin, got %d", len(tbin.Points))
	}
}

func TestDecodeTbinRejectsShortBuffer(t *testing.T) {
	if _, err := decodeTbin(make([]byte, 7)); err == nil {
		t.Fatal("expected error for a 7-byte tbin")
	}
}

func TestDecodeTbinRejectsMisalignedBody(t *testing.T) {
	// 8-byte header + 20 bytes of point data: 20 is not a multiple of 12.
	if _, err := decodeTbin(make([]byte, 28)); err == nil {
		t.Fatal("expected error for a 20-byte point body")
	}
}

func TestDecodeTbinMultiplePoints(t *testing.T) {
	pts := []Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	buf := tbinBuf(38, pts)
	tbin, err := decodeTbin(buf)
	if err != nil {
		t.Fatalf("decodeTbin: %v", err)
	}
	if len(tbin.Points) != len(pts) {
		t.Fatalf("len(Points) = %d, want %d", len(tbin.Points), len(pts))
	}
	for i, p := range pts {
		if tbin.Points[i] != p {
			t.Errorf("Points[%d] = %v, want %v", i, tbin.Points[i], p)
		}
	}
}
