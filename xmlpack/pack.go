package xmlpack

import "strings"

// Category is one node of the pack's category tree (spec section 4.2's
// "category arena"). Categories are stored flat, indexed by CategoryID,
// with ParentID as the only link — there are no back-pointers, matching
// the Rust original's arena-of-indices layout rather than a pointer tree.
type Category struct {
	ID          CategoryID
	ParentID    CategoryID // -1 for a root category
	Name        string     // the tag's "name" attribute, e.g. "waypoints"
	DisplayName string     // first-wins "DisplayName" attribute
	Path        string     // dotted path, e.g. "root.waypoints.lvl1"
	Separator   bool
	DefaultToggle bool // whether newly-seen categories start enabled
	Attrs       CommonAttributes
}

// CategoryID indexes into Pack.Categories.
type CategoryID int

const NoCategory CategoryID = -1

// Marker is a single POI tag resolved against its category's attributes.
type Marker struct {
	GUID       GUID
	CategoryID CategoryID
	MapID      uint32
	Position   Vec3
	Attrs      CommonAttributes
}

// Trail is a single Trail tag, its geometry loaded from a Tbin.
type Trail struct {
	GUID       GUID
	CategoryID CategoryID
	MapID      uint32
	TbinID     TbinID
	Attrs      CommonAttributes
}

// TbinID indexes into Pack.Tbins.
type TbinID int

// Tbin is the decoded geometry of a .trl file (spec section 4.2.5): a
// per-trail map id plus a polyline of points used to build a camera-facing
// ribbon at render time.
type Tbin struct {
	MapID  uint32
	Points []Vec3
}

// TextureID indexes into Pack.Textures.
type TextureID int

// Texture is a decoded image ready for GPU upload; Pixels is tightly
// packed RGBA8, row-major, top-to-bottom.
type Texture struct {
	Path   string
	Width  int
	Height int
	Pixels []byte
}

// Pack is the fully loaded, in-memory result of one marker pack (spec
// section 4 "Pack Loader" + section 5 "Pack Store" input contract).
type Pack struct {
	Categories []Category
	Markers    []Marker
	Trails     []Trail
	Tbins      []Tbin
	Textures   []Texture

	// textureIndex and tbinIndex resolve a pack-relative path (as written
	// in iconFile/trailfile attributes, case-insensitively) to the
	// corresponding slice index, filled in by the image and trail-binary
	// load phases.
	textureIndex map[string]TextureID
	tbinIndex    map[string]TbinID

	// categoryPathIndex resolves a category's dotted path to its arena
	// index, used to merge repeated <MarkerCategory> declarations across
	// files and to answer CategoryByPath lookups.
	categoryPathIndex map[string]CategoryID

	// guidSeen tracks every GUID assigned so far so duplicates (spec
	// section 3) get rewritten to a fresh value instead of colliding.
	guidSeen map[GUID]bool

	// Failures accumulates non-fatal problems encountered during load
	// (spec section 4.2's best-effort contract): entries here never abort
	// the overall load, unlike the three hard-abort conditions in zip.go.
	Failures Failures
}

// NewFromParts rebuilds a Pack (and its lookup indices) from already-
// decoded slices, used by the quick-load cache to skip re-parsing a
// pack's archive on every reload.
func NewFromParts(categories []Category, markers []Marker, trails []Trail, tbins []Tbin, textures []Texture) *Pack {
	p := &Pack{
		Categories:        categories,
		Markers:           markers,
		Trails:            trails,
		Tbins:             tbins,
		Textures:          textures,
		textureIndex:      make(map[string]TextureID, len(textures)),
		tbinIndex:         make(map[string]TbinID, len(tbins)),
		categoryPathIndex: make(map[string]CategoryID, len(categories)),
		guidSeen:          make(map[GUID]bool, len(markers)+len(trails)),
	}
	for i, t := range textures {
		p.textureIndex[t.Path] = TextureID(i)
	}
	// tbinIndex (path -> TbinID) is only needed while linking <Trail>
	// tags during the initial XML load; Trail.TbinID is already resolved
	// by the time a Pack reaches the quick-load cache, so it is left
	// empty here.
	for i, c := range categories {
		p.categoryPathIndex[c.Path] = CategoryID(i)
	}
	for _, m := range markers {
		p.guidSeen[m.GUID] = true
	}
	for _, t := range trails {
		p.guidSeen[t.GUID] = true
	}
	return p
}

// MarkersByMap and TrailsByMap give the Active-Map Selector (package
// activemap) the map-scoped slices it needs without re-scanning the
// whole pack on every map change.
func (p *Pack) MarkersByMap(mapID uint32) []Marker {
	out := make([]Marker, 0)
	for _, m := range p.Markers {
		if m.MapID == mapID {
			out = append(out, m)
		}
	}
	return out
}

func (p *Pack) TrailsByMap(mapID uint32) []Trail {
	out := make([]Trail, 0)
	for _, tr := range p.Trails {
		if tr.MapID == mapID {
			out = append(out, tr)
		}
	}
	return out
}

// Category looks up a category by id, returning ok=false for NoCategory
// or an out-of-range id.
func (p *Pack) Category(id CategoryID) (Category, bool) {
	if id < 0 || int(id) >= len(p.Categories) {
		return Category{}, false
	}
	return p.Categories[id], true
}

// TextureByPath resolves a pack-relative texture path (as written in an
// iconFile/texture attribute) to its TextureID.
func (p *Pack) TextureByPath(path string) (TextureID, bool) {
	id, ok := p.textureIndex[strings.ToLower(path)]
	return id, ok
}

// Tbin looks up decoded trail geometry by id.
func (p *Pack) Tbin(id TbinID) (Tbin, bool) {
	if id < 0 || int(id) >= len(p.Tbins) {
		return Tbin{}, false
	}
	return p.Tbins[id], true
}

// ResolvedAttrs walks a category's ancestor chain and merges in
// everything the category itself didn't set, root-most ancestor first so
// closer ancestors take precedence over further ones (spec section
// 4.2.3's "category merge").
func (p *Pack) ResolvedAttrs(id CategoryID) CommonAttributes {
	var chain []CategoryID
	for id != NoCategory {
		cat, ok := p.Category(id)
		if !ok {
			break
		}
		chain = append(chain, id)
		id = cat.ParentID
	}
	var out CommonAttributes
	for i := len(chain) - 1; i >= 0; i-- {
		cat := p.Categories[chain[i]]
		merged := cat.Attrs
		merged.InheritFrom(out)
		out = merged
	}
	return out
}
