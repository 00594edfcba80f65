package activemap

import (
	"time"

	"jokolay/mlink"
	"jokolay/packstore"
	"jokolay/xmlpack"
)

// TextureUploader hands a decoded pack texture to whatever GPU backend is
// in use and returns an opaque handle the render package can bind. Upload
// is expected to be idempotent-safe to call repeatedly for the same
// texture id only once per Selector (the Selector caches handles), so
// implementations do not need their own dedup.
type TextureUploader interface {
	Upload(tex xmlpack.Texture) any
}

// VisibleMarker is one marker the Active-Map Selector has decided should
// be drawn right now, with its attributes fully resolved against its
// category chain.
type VisibleMarker struct {
	Marker        xmlpack.Marker
	Attrs         xmlpack.CommonAttributes
	TextureHandle any // nil if unresolved/no icon
}

// VisibleTrail is the trail equivalent of VisibleMarker.
type VisibleTrail struct {
	Trail         xmlpack.Trail
	Attrs         xmlpack.CommonAttributes
	Tbin          xmlpack.Tbin
	TextureHandle any
}

// Selector holds the per-map view of a Store's pack. OnMapChange re-slices
// the pack's markers/trails only when the map changes; every Materialize
// call then re-applies category selection, activation/behavior suppression
// and the attribute filters, since those can change every frame (e.g. a
// trigger_range proximity activation).
type Selector struct {
	store    *packstore.Store
	uploader TextureUploader

	currentMapID uint32
	mapMarkers   []xmlpack.Marker
	mapTrails    []xmlpack.Trail

	textureHandles map[xmlpack.TextureID]any
}

func NewSelector(store *packstore.Store, uploader TextureUploader) *Selector {
	return &Selector{
		store:          store,
		uploader:       uploader,
		currentMapID:   0,
		textureHandles: make(map[xmlpack.TextureID]any),
	}
}

// OnMapChange re-scopes the selector to mapID's markers/trails. Cheap
// relative to a full reload: it only re-slices the pack's already-parsed
// data, it does not touch disk.
func (s *Selector) OnMapChange(mapID uint32) {
	if mapID == s.currentMapID && s.mapMarkers != nil {
		return
	}
	s.currentMapID = mapID
	s.mapMarkers = s.store.Pack.MarkersByMap(mapID)
	s.mapTrails = s.store.Pack.TrailsByMap(mapID)
}

func (s *Selector) textureHandle(path string) any {
	if path == "" {
		return nil
	}
	id, ok := s.store.Pack.TextureByPath(path)
	if !ok {
		return nil
	}
	if h, ok := s.textureHandles[id]; ok {
		return h
	}
	h := s.uploader.Upload(s.store.Pack.Textures[id])
	s.textureHandles[id] = h
	return h
}

// Materialize walks the current map's markers/trails and returns the
// subset that should be drawn given snap's player state and now (spec
// section 4.4's per-frame materialization algorithm): category selection
// must be fully enabled up the ancestor chain, the entry must not be
// currently suppressed by its Behavior, and it must pass the
// mount/profession/race/map-type filters.
func (s *Selector) Materialize(snap mlink.Snapshot, now time.Time) ([]VisibleMarker, []VisibleTrail) {
	var markers []VisibleMarker
	for _, m := range s.mapMarkers {
		if !s.store.Selection.AllEnabled(m.CategoryID) {
			continue
		}
		if s.store.Activation.IsSuppressed(m.GUID, m.Attrs.Behavior, now, snap.MapID, snap.ServerAddress, snap.CharacterName, resetDuration(m.Attrs)) {
			continue
		}
		if !passesFilters(m.Attrs, snap) {
			continue
		}
		markers = append(markers, VisibleMarker{
			Marker:        m,
			Attrs:         m.Attrs,
			TextureHandle: s.textureHandle(m.Attrs.IconFile),
		})
	}

	var trails []VisibleTrail
	for _, tr := range s.mapTrails {
		if !s.store.Selection.AllEnabled(tr.CategoryID) {
			continue
		}
		if s.store.Activation.IsSuppressed(tr.GUID, tr.Attrs.Behavior, now, snap.MapID, snap.ServerAddress, snap.CharacterName, resetDuration(tr.Attrs)) {
			continue
		}
		if !passesFilters(tr.Attrs, snap) {
			continue
		}
		tbin, ok := s.store.Pack.Tbin(tr.TbinID)
		if !ok {
			continue
		}
		trails = append(trails, VisibleTrail{
			Trail:         tr,
			Attrs:         tr.Attrs,
			Tbin:          tbin,
			TextureHandle: s.textureHandle(tr.Attrs.Texture),
		})
	}

	return markers, trails
}

func resetDuration(attrs xmlpack.CommonAttributes) time.Duration {
	if !attrs.IsSet(xmlpack.AttrResetLength) {
		return 0
	}
	return time.Duration(attrs.ResetLength * float32(time.Second))
}

// Activate records a player interaction with guid (e.g. walking within
// trigger_range, or a manual dismiss), so the next Materialize call
// suppresses it per its Behavior.
func (s *Selector) Activate(guid xmlpack.GUID, behavior xmlpack.Behavior, snap mlink.Snapshot, now time.Time) {
	s.store.Activation.Activate(guid, behavior, now, snap.MapID, snap.ServerAddress, snap.CharacterName)
}
