package xmlpack

import (
	"encoding/xml"
	"io"
	"strings"
)

// parsePOIs walks every <POI> and <Trail> element in data, producing
// Markers and Trails resolved against the category arena built by
// parseCategories (spec section 4.2's phase ordering runs categories
// before POIs/Trails for exactly this reason). Missing or unresolvable
// required fields (map id, category path, trail binary) drop the single
// entry with a warning rather than aborting the file.
func parsePOIs(data []byte, pack *Pack, source string) error {
	if pack.guidSeen == nil {
		pack.guidSeen = make(map[GUID]bool)
	}
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	dec.Strict = false
	warn := pack.Failures.warnFunc(source)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			pack.Failures.AddError(source, "xml parse error: %v", err)
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case strings.EqualFold(start.Name.Local, "POI"):
			pack.addMarker(attrMap(start.Attr), source, warn)
		case strings.EqualFold(start.Name.Local, "Trail"):
			pack.addTrail(attrMap(start.Attr), source, warn)
		}
	}
	return nil
}

func (p *Pack) resolveGUID(attrs map[string]string) GUID {
	if g, ok := decodeGUID(attrs["guid"]); ok {
		if !p.guidSeen[g] {
			p.guidSeen[g] = true
			return g
		}
	}
	// Missing, malformed, or duplicate: mint a fresh one (spec section 3).
	for {
		g := NewGUID()
		if !p.guidSeen[g] {
			p.guidSeen[g] = true
			return g
		}
	}
}

func (p *Pack) resolveCategory(attrs map[string]string, source string, warn func(string)) (CategoryID, bool) {
	typePath := attrs["type"]
	if typePath == "" {
		warn("missing type attribute")
		return NoCategory, false
	}
	id, ok := p.CategoryByPath(typePath)
	if !ok {
		warn("unresolved category path: " + typePath)
		return NoCategory, false
	}
	return id, true
}

func parsePosition(attrs map[string]string) (Vec3, bool) {
	x, ok1 := parseFloat(attrs["xpos"])
	y, ok2 := parseFloat(attrs["ypos"])
	z, ok3 := parseFloat(attrs["zpos"])
	return Vec3{x, y, z}, ok1 && ok2 && ok3
}

func (p *Pack) addMarker(attrs map[string]string, source string, warn func(string)) {
	mapID, ok := parseInt(attrs["mapid"])
	if !ok {
		warn("POI missing or invalid MapID")
		return
	}
	catID, ok := p.resolveCategory(attrs, source, warn)
	if !ok {
		return
	}
	pos, ok := parsePosition(attrs)
	if !ok {
		warn("POI missing xpos/ypos/zpos")
		return
	}

	resolved := p.ResolvedAttrs(catID)
	for k, v := range attrs {
		applyAttr(&resolved, k, v, warn)
	}
	if iconFile := resolved.IconFile; iconFile != "" {
		if _, ok := p.textureIndex[strings.ToLower(iconFile)]; !ok {
			warn("iconFile not found in pack: " + iconFile)
		}
	}

	p.Markers = append(p.Markers, Marker{
		GUID:       p.resolveGUID(attrs),
		CategoryID: catID,
		MapID:      uint32(mapID),
		Position:   pos,
		Attrs:      resolved,
	})
}

func (p *Pack) addTrail(attrs map[string]string, source string, warn func(string)) {
	catID, ok := p.resolveCategory(attrs, source, warn)
	if !ok {
		return
	}
	trailFile := attrs["trailfile"]
	tbinID, ok := p.tbinIndex[strings.ToLower(trailFile)]
	if !ok {
		warn("trailFile not found in pack: " + trailFile)
		return
	}

	resolved := p.ResolvedAttrs(catID)
	for k, v := range attrs {
		applyAttr(&resolved, k, v, warn)
	}

	p.Trails = append(p.Trails, Trail{
		GUID:       p.resolveGUID(attrs),
		CategoryID: catID,
		MapID:      p.Tbins[tbinID].MapID,
		TbinID:     tbinID,
		Attrs:      resolved,
	})
}
