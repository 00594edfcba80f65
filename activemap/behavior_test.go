package activemap

import (
	"testing"

	"jokolay/mlink"
	"jokolay/xmlpack"
)

func TestPassesFiltersUnsetAttributeAlwaysPasses(t *testing.T) {
	var attrs xmlpack.CommonAttributes // nothing set
	snap := mlink.Snapshot{Mount: mlink.MountGriffon, Profession: 1, Race: 0, MapType: 7}
	if !passesFilters(attrs, snap) {
		t.Fatalf("expected a category with no filter attributes set to pass regardless of player state")
	}
}

func TestPassesFiltersRestrictsToMatchingMount(t *testing.T) {
	attrs := xmlpack.CommonAttributes{Mount: xmlpack.MountGriffon | xmlpack.MountSkyscale}
	attrs.Active |= xmlpack.AttrMount

	miss := mlink.Snapshot{Mount: mlink.MountRaptor}
	if passesFilters(attrs, miss) {
		t.Fatalf("expected raptor to fail a griffon|skyscale mount filter")
	}
	hit := mlink.Snapshot{Mount: mlink.MountSkyscale}
	if !passesFilters(attrs, hit) {
		t.Fatalf("expected skyscale to pass a griffon|skyscale mount filter")
	}
}

func TestPassesFiltersZeroValueActiveFilterIsIgnored(t *testing.T) {
	// Mount left at its zero value (0) but with the bit marked active: spec's
	// "explicitly set to zero" case. Our allow-list semantics treat a
	// zero-valued bitset filter the same as unset, since an empty bitset
	// can never match any concrete mount.
	attrs := xmlpack.CommonAttributes{Mount: 0}
	attrs.Active |= xmlpack.AttrMount
	snap := mlink.Snapshot{Mount: mlink.MountGriffon}
	if !passesFilters(attrs, snap) {
		t.Fatalf("expected a zero-valued mount filter to impose no restriction")
	}
}

func TestPassesFiltersMapTypeFilter(t *testing.T) {
	attrs := xmlpack.CommonAttributes{MapType: xmlpack.MapTypePvP}
	attrs.Active |= xmlpack.AttrMapType

	wrongMap := mlink.Snapshot{MapType: 0}
	if passesFilters(attrs, wrongMap) {
		t.Fatalf("expected public map-type to fail a pvp-only filter")
	}
	rightMap := mlink.Snapshot{MapType: 3} // ordinal of MapTypePvP in GW2's map-type enum
	if !passesFilters(attrs, rightMap) {
		t.Fatalf("expected pvp map-type to pass a pvp-only filter")
	}
}
