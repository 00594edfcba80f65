package xmlpack

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"
)

// entryKind classifies one archive member by extension.
type entryKind int

const (
	entryUnknown entryKind = iota
	entryXML
	entryImage
	entryTbin
)

func classify(name string) entryKind {
	switch strings.ToLower(path.Ext(name)) {
	case ".xml":
		return entryXML
	case ".png", ".jpg", ".jpeg":
		return entryImage
	case ".trl":
		return entryTbin
	default:
		return entryUnknown
	}
}

// archiveEntry is one file pulled out of either a zip archive or a plain
// directory, normalized to a slash-separated, lowercase path for
// case-insensitive lookup from iconFile/trailfile attributes.
type archiveEntry struct {
	normalizedPath string
	kind           entryKind
	data           []byte
}

// loadZip enumerates a .taco/.zip pack archive. Three conditions abort
// the entire load outright rather than degrading to best-effort (spec
// section 4.2's "Best-effort contract" carve-out): a corrupt zip
// directory, a duplicate normalized path, and any entry path that
// escapes the archive root.
func loadZip(r io.ReaderAt, size int64) ([]archiveEntry, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("invalid zip archive: %w", err)
	}

	seen := make(map[string]bool, len(zr.File))
	entries := make([]archiveEntry, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		norm, err := normalizeArchivePath(f.Name)
		if err != nil {
			return nil, err
		}
		if seen[norm] {
			return nil, fmt.Errorf("duplicate archive path: %s", norm)
		}
		seen[norm] = true

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}

		entries = append(entries, archiveEntry{
			normalizedPath: norm,
			kind:           classify(norm),
			data:           data,
		})
	}
	return entries, nil
}

// normalizeArchivePath rejects absolute paths and any ".." path segment,
// then lowercases and forward-slashes the result for stable lookups.
func normalizeArchivePath(name string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("archive entry escapes pack root: %s", name)
	}
	return strings.ToLower(cleaned), nil
}

// decodeTexture decodes a PNG/JPEG byte slice into a Texture's tightly
// packed RGBA8 pixel buffer.
func decodeTexture(path string, data []byte) (Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Texture{}, fmt.Errorf("decoding image %s: %w", path, err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, w*h*4)
	off := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pixels[off+0] = byte(r >> 8)
			pixels[off+1] = byte(g >> 8)
			pixels[off+2] = byte(b >> 8)
			pixels[off+3] = byte(a >> 8)
			off += 4
		}
	}
	return Texture{Path: path, Width: w, Height: h, Pixels: pixels}, nil
}
