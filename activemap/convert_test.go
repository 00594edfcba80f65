package activemap

import (
	"testing"

	"jokolay/mlink"
	"jokolay/xmlpack"
)

func TestMountBitNoneIsZero(t *testing.T) {
	if mountBit(mlink.MountNone) != 0 {
		t.Fatalf("expected MountNone to convert to the zero bitset")
	}
}

func TestMountBitMatchesTable(t *testing.T) {
	if mountBit(mlink.MountGriffon) != xmlpack.MountGriffon {
		t.Fatalf("mountBit(MountGriffon) did not match xmlpack.MountGriffon")
	}
	if mountBit(mlink.MountSiegeTurtle) != xmlpack.MountSiegeTurtle {
		t.Fatalf("mountBit(MountSiegeTurtle) did not match xmlpack.MountSiegeTurtle")
	}
}

func TestProfessionBitUnknownIsZero(t *testing.T) {
	if professionBit(0) != 0 {
		t.Fatalf("expected unknown profession id to convert to zero")
	}
	if professionBit(99) != 0 {
		t.Fatalf("expected out-of-range profession id to convert to zero")
	}
}

func TestProfessionBitKnownIDs(t *testing.T) {
	if professionBit(1) != xmlpack.ProfessionGuardian {
		t.Fatalf("expected id 1 to map to Guardian")
	}
	if professionBit(9) != xmlpack.ProfessionRevenant {
		t.Fatalf("expected id 9 to map to Revenant")
	}
}

func TestRaceBitKnownIDs(t *testing.T) {
	if raceBit(0) != xmlpack.RaceAsura {
		t.Fatalf("expected id 0 to map to Asura")
	}
	if raceBit(4) != xmlpack.RaceSylvari {
		t.Fatalf("expected id 4 to map to Sylvari")
	}
	if raceBit(5) != 0 {
		t.Fatalf("expected out-of-range race id to convert to zero")
	}
}

func TestMapTypeBitOverflowIsZero(t *testing.T) {
	if mapTypeBit(32) != 0 {
		t.Fatalf("expected a map-type ordinal >= 32 to convert to zero rather than overflow the bitset")
	}
	if mapTypeBit(0) != xmlpack.MapTypeUnknown {
		t.Fatalf("expected map-type ordinal 0 to match MapTypeUnknown")
	}
}
