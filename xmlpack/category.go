package xmlpack

import (
	"encoding/xml"
	"io"
	"strings"
)

// parseCategories walks every <MarkerCategory> element in data (recursing
// into nested MarkerCategory children) and merges them into pack's
// category arena. A category may be declared more than once across
// several files in a pack; spec section 4.2.3 resolves repeats as
// "first-wins display metadata, unset-only attribute merge": the first
// declaration's DisplayName/Separator win, and later declarations only
// fill in attributes the earlier one left unset.
func parseCategories(data []byte, pack *Pack, source string) error {
	if pack.categoryPathIndex == nil {
		pack.categoryPathIndex = make(map[string]CategoryID)
	}
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	dec.Strict = false

	var stack []CategoryID
	parent := func() CategoryID {
		if len(stack) == 0 {
			return NoCategory
		}
		return stack[len(stack)-1]
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			pack.Failures.AddError(source, "xml parse error: %v", err)
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !strings.EqualFold(t.Name.Local, "MarkerCategory") {
				continue
			}
			id := pack.addOrMergeCategory(parent(), attrMap(t.Attr), source)
			stack = append(stack, id)
		case xml.EndElement:
			if strings.EqualFold(t.Name.Local, "MarkerCategory") && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[strings.ToLower(a.Name.Local)] = a.Value
	}
	return m
}

// addOrMergeCategory resolves one <MarkerCategory> tag against the
// existing arena, creating a new Category or merging into an existing one
// with the same dotted path.
func (p *Pack) addOrMergeCategory(parentID CategoryID, attrs map[string]string, source string) CategoryID {
	name := attrs["name"]
	if name == "" {
		name = "unnamed"
	}
	path := name
	if parentID != NoCategory {
		path = p.Categories[parentID].Path + "." + name
	}

	displayName := attrs["displayname"]
	separator := attrs["isseparator"] == "1"
	defaultToggle := attrs["defaulttoggle"] != "0"

	parsed := CommonAttributes{}
	warn := p.Failures.warnFunc(source)
	for k, v := range attrs {
		applyAttr(&parsed, k, v, warn)
	}

	if existing, ok := p.categoryPathIndex[path]; ok {
		cat := &p.Categories[existing]
		if cat.DisplayName == "" {
			cat.DisplayName = displayName
		}
		merged := cat.Attrs
		merged.InheritFrom(parsed)
		cat.Attrs = merged
		return existing
	}

	id := CategoryID(len(p.Categories))
	p.Categories = append(p.Categories, Category{
		ID:            id,
		ParentID:      parentID,
		Name:          name,
		DisplayName:   displayName,
		Path:          path,
		Separator:     separator,
		DefaultToggle: defaultToggle,
		Attrs:         parsed,
	})
	p.categoryPathIndex[path] = id
	return id
}

// CategoryByPath looks up a category by its dotted path (e.g. used by the
// Pack Store to restore a user's selection tree across reloads).
func (p *Pack) CategoryByPath(path string) (CategoryID, bool) {
	id, ok := p.categoryPathIndex[path]
	return id, ok
}
