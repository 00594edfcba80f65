package mlink

// mapNames is a small debug-only lookup table for the most common
// leveling/WvW maps, used solely in log lines and the diagnostics HUD (see
// SPEC_FULL.md's "Map-name lookup for diagnostics" supplemented feature).
// It is never consulted for pack/marker semantics.
var mapNames = map[uint32]string{
	15: "Queensdale",
	17: "Harathi Hinterlands",
	18: "Divinity's Reach",
	19: "Plains of Ashford",
	20: "Blazeridge Steppes",
	21: "Fields of Ruin",
	22: "Fireheart Rise",
	23: "Kessex Hills",
	24: "Gendarran Fields",
	25: "Iron Marches",
	26: "Dredgehaunt Cliffs",
	27: "Lornar's Pass",
	28: "Wayfarer Foothills",
	29: "Timberline Falls",
	30: "Frostgorge Sound",
	31: "Snowden Drifts",
	32: "Diessa Plateau",
	38: "Eternal Battlegrounds",
	95: "Red Desert Borderlands",
	96: "Blue Desert Borderlands",
}

// MapName returns a human-readable map name for diagnostics/logging, or
// "unknown" if id isn't in the small lookup table.
func MapName(id uint32) string {
	if name, ok := mapNames[id]; ok {
		return name
	}
	return "unknown"
}
