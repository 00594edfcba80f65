package xmlpack

import (
	"fmt"
	"os"
	"strings"
)

// LoadZipFile loads a .taco/.zip marker pack from disk, running the full
// phase pipeline described in spec section 4.2: enumerate & classify,
// then images, then trail binaries, then XML filtering, then the
// category pass, then the POI/Trail pass. Each phase after enumeration
// only ever drops the single offending entry (recorded in Pack.Failures);
// only a corrupt archive, a duplicate path, or a path escape aborts the
// whole load.
func LoadZipFile(zipPath string) (*Pack, error) {
	f, err := os.Open(zipPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	entries, err := loadZip(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("loading pack %s: %w", zipPath, err)
	}
	return loadEntries(entries), nil
}

// LoadDir loads an already-unpacked marker pack directory through the
// same phase pipeline as LoadZipFile.
func LoadDir(dirPath string) (*Pack, error) {
	entries, err := loadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("loading pack dir %s: %w", dirPath, err)
	}
	return loadEntries(entries), nil
}

func loadEntries(entries []archiveEntry) *Pack {
	pack := &Pack{
		textureIndex:      make(map[string]TextureID),
		tbinIndex:         make(map[string]TbinID),
		categoryPathIndex: make(map[string]CategoryID),
		guidSeen:          make(map[GUID]bool),
	}

	// Phase 2: images.
	for _, e := range entries {
		if e.kind != entryImage {
			continue
		}
		tex, err := decodeTexture(e.normalizedPath, e.data)
		if err != nil {
			pack.Failures.AddError(e.normalizedPath, "%v", err)
			continue
		}
		id := TextureID(len(pack.Textures))
		pack.Textures = append(pack.Textures, tex)
		pack.textureIndex[e.normalizedPath] = id
	}

	// Phase 3: trail binaries.
	for _, e := range entries {
		if e.kind != entryTbin {
			continue
		}
		tbin, err := decodeTbin(e.data)
		if err != nil {
			pack.Failures.AddError(e.normalizedPath, "%v", err)
			continue
		}
		id := TbinID(len(pack.Tbins))
		pack.Tbins = append(pack.Tbins, tbin)
		pack.tbinIndex[e.normalizedPath] = id
	}

	// Phase 4: permissive XML filtering (idempotent on already-valid XML).
	xmlEntries := make([]archiveEntry, 0, len(entries))
	for _, e := range entries {
		if e.kind != entryXML {
			continue
		}
		e.data = filterXML(e.data)
		xmlEntries = append(xmlEntries, e)
	}

	// Phase 5: category pass, across every XML file, before any POI/Trail
	// is resolved, so forward references to a category declared in a
	// later file still resolve.
	for _, e := range xmlEntries {
		if err := parseCategories(e.data, pack, e.normalizedPath); err != nil {
			continue
		}
	}

	// Phase 6: POI/Trail pass.
	for _, e := range xmlEntries {
		if err := parsePOIs(e.data, pack, e.normalizedPath); err != nil {
			continue
		}
	}

	return pack
}

// Load dispatches on the path's shape: a regular file is treated as a zip
// archive, a directory is walked as an unpacked pack.
func Load(p string) (*Pack, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDir(p)
	}
	if !strings.HasSuffix(strings.ToLower(p), ".zip") && !strings.HasSuffix(strings.ToLower(p), ".taco") {
		return nil, fmt.Errorf("unrecognized pack file extension: %s", p)
	}
	return LoadZipFile(p)
}
