// Package activemap materializes the subset of a loaded pack that should
// actually be drawn right now: the markers/trails on the player's current
// map, filtered by category selection, activation suppression, and the
// mount/profession/race/map-type attribute filters (spec section 4.4).
package activemap

import (
	"jokolay/mlink"
	"jokolay/xmlpack"
)

// mountBit converts a MumbleLink mount index to the pack-format mount
// bitset. MountNone never matches a "mount" filter attribute.
func mountBit(m mlink.Mount) xmlpack.MountSet {
	if m == mlink.MountNone {
		return 0
	}
	return 1 << (uint(m) - 1)
}

// professionBit converts GW2's documented profession API id (Guardian=1
// .. Revenant=9) to our bitset.
func professionBit(id int) xmlpack.ProfessionSet {
	switch id {
	case 1:
		return xmlpack.ProfessionGuardian
	case 2:
		return xmlpack.ProfessionWarrior
	case 3:
		return xmlpack.ProfessionEngineer
	case 4:
		return xmlpack.ProfessionRanger
	case 5:
		return xmlpack.ProfessionThief
	case 6:
		return xmlpack.ProfessionElementalist
	case 7:
		return xmlpack.ProfessionMesmer
	case 8:
		return xmlpack.ProfessionNecromancer
	case 9:
		return xmlpack.ProfessionRevenant
	default:
		return 0
	}
}

// raceBit converts GW2's documented race API id (Asura=0 .. Sylvari=4) to
// our bitset.
func raceBit(id int) xmlpack.RaceSet {
	switch id {
	case 0:
		return xmlpack.RaceAsura
	case 1:
		return xmlpack.RaceCharr
	case 2:
		return xmlpack.RaceHuman
	case 3:
		return xmlpack.RaceNorn
	case 4:
		return xmlpack.RaceSylvari
	default:
		return 0
	}
}

// mapTypeBit converts the raw context map-type integer to our bitset; the
// two enumerations share the same ordinal assignment (spec section 9's
// GLOSSARY lists GW2's map-type ids in this order).
func mapTypeBit(raw uint32) xmlpack.MapTypeSet {
	if raw >= 32 {
		return 0
	}
	return 1 << raw
}
