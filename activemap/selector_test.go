package activemap

import (
	"testing"
	"time"

	"jokolay/mlink"
	"jokolay/packstore"
	"jokolay/xmlpack"
)

type stubUploader struct{ calls int }

func (u *stubUploader) Upload(tex xmlpack.Texture) any {
	u.calls++
	return tex.Path
}

func newTestPack() *xmlpack.Pack {
	cats := []xmlpack.Category{
		{ID: 0, ParentID: xmlpack.NoCategory, Name: "root", Path: "root", DefaultToggle: true},
	}
	textures := []xmlpack.Texture{
		{Path: "icon.png", Width: 1, Height: 1, Pixels: []byte{255, 255, 255, 255}},
	}
	markerAttrs := xmlpack.CommonAttributes{IconFile: "icon.png"}
	markerAttrs.Active |= xmlpack.AttrIconFile
	markers := []xmlpack.Marker{
		{GUID: xmlpack.NewGUID(), CategoryID: 0, MapID: 15, Attrs: markerAttrs},
	}
	p := xmlpack.NewFromParts(cats, markers, nil, nil, textures)
	return p
}

func newTestStore(t *testing.T) *packstore.Store {
	t.Helper()
	return packstore.NewStore(newTestPack(), "test")
}

func baseSnapshot() mlink.Snapshot {
	return mlink.Snapshot{MapID: 15, ShardID: 1, Mount: mlink.MountNone, Profession: 1, Race: 2, MapType: 0}
}

func TestSelectorOnMapChangeScopesToMap(t *testing.T) {
	store := newTestStore(t)
	sel := NewSelector(store, &stubUploader{})
	sel.OnMapChange(15)
	markers, trails := sel.Materialize(baseSnapshot(), time.Now())
	if len(markers) != 1 {
		t.Fatalf("expected 1 visible marker on map 15, got %d", len(markers))
	}
	if len(trails) != 0 {
		t.Fatalf("expected 0 trails, got %d", len(trails))
	}

	sel.OnMapChange(99)
	markers, _ = sel.Materialize(baseSnapshot(), time.Now())
	if len(markers) != 0 {
		t.Fatalf("expected 0 visible markers after switching to an unrelated map, got %d", len(markers))
	}
}

func TestSelectorHonorsSelectionTree(t *testing.T) {
	store := newTestStore(t)
	store.Selection.SetEnabled(0, false)
	sel := NewSelector(store, &stubUploader{})
	sel.OnMapChange(15)
	markers, _ := sel.Materialize(baseSnapshot(), time.Now())
	if len(markers) != 0 {
		t.Fatalf("expected category-disabled marker to be filtered out, got %d", len(markers))
	}
}

func TestSelectorHonorsActivationSuppression(t *testing.T) {
	store := newTestStore(t)
	store.Pack.Markers[0].Attrs.Behavior = xmlpack.BehaviorOnlyVisibleBeforeActivation
	store.Pack.Markers[0].Attrs.Active |= xmlpack.AttrBehavior
	sel := NewSelector(store, &stubUploader{})
	sel.OnMapChange(15)

	markers, _ := sel.Materialize(baseSnapshot(), time.Now())
	if len(markers) != 1 {
		t.Fatalf("expected marker visible before activation, got %d", len(markers))
	}

	sel.Activate(store.Pack.Markers[0].GUID, xmlpack.BehaviorOnlyVisibleBeforeActivation, baseSnapshot(), time.Now())
	markers, _ = sel.Materialize(baseSnapshot(), time.Now())
	if len(markers) != 0 {
		t.Fatalf("expected marker suppressed after activation, got %d", len(markers))
	}
}

func TestSelectorAppliesMountFilter(t *testing.T) {
	store := newTestStore(t)
	store.Pack.Markers[0].Attrs.Mount = xmlpack.MountGriffon
	store.Pack.Markers[0].Attrs.Active |= xmlpack.AttrMount
	sel := NewSelector(store, &stubUploader{})
	sel.OnMapChange(15)

	snap := baseSnapshot()
	snap.Mount = mlink.MountNone
	markers, _ := sel.Materialize(snap, time.Now())
	if len(markers) != 0 {
		t.Fatalf("expected griffon-only marker hidden while unmounted, got %d", len(markers))
	}

	snap.Mount = mlink.MountGriffon
	markers, _ = sel.Materialize(snap, time.Now())
	if len(markers) != 1 {
		t.Fatalf("expected griffon-only marker visible while on griffon, got %d", len(markers))
	}
}

func TestSelectorCachesTextureUploads(t *testing.T) {
	store := newTestStore(t)
	uploader := &stubUploader{}
	sel := NewSelector(store, uploader)
	sel.OnMapChange(15)

	sel.Materialize(baseSnapshot(), time.Now())
	sel.Materialize(baseSnapshot(), time.Now())
	if uploader.calls != 1 {
		t.Fatalf("expected texture to be uploaded once and cached, got %d uploads", uploader.calls)
	}
}
