package packstore

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"

	"jokolay/storage"
	"jokolay/xmlpack"
)

// gobPack mirrors xmlpack.Pack's exported fields for gob encoding; the
// Pack type itself keeps its indices unexported, so the quick-load cache
// round-trips through this shape and rebuilds the indices on load.
type gobPack struct {
	Categories []xmlpack.Category
	Markers    []xmlpack.Marker
	Trails     []xmlpack.Trail
	Tbins      []xmlpack.Tbin
	Textures   []xmlpack.Texture
}

// quickLoadCacheDir returns the directory holding compressed snapshots of
// fully-parsed packs, keyed by a hash of the source file's path/size/mtime
// so a changed source pack misses the cache instead of serving stale data.
func quickLoadCacheDir() string {
	return filepath.Join(storage.DataDir(), "packcache")
}

// QuickLoadKey derives the cache key for a source pack file.
func QuickLoadKey(sourcePath string) (string, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d", sourcePath, info.Size(), info.ModTime().UnixNano())
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SaveQuickLoad writes an lz4-compressed gob snapshot of pack, keyed by
// key, so a future Load can skip re-parsing the archive entirely (spec
// section 5's "quick-load pack cache", grounded on the teacher's
// compressLZ4/decompressLZ4 state-save pattern).
func SaveQuickLoad(key string, pack *xmlpack.Pack) error {
	dir := quickLoadCacheDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(toGobPack(pack)); err != nil {
		return fmt.Errorf("encoding quick-load snapshot: %w", err)
	}

	var compressed bytes.Buffer
	writer := lz4.NewWriter(&compressed)
	writer.CompressionLevel = 4
	writer.WithConcurrency(-1)
	if _, err := writer.Write(raw.Bytes()); err != nil {
		writer.Close()
		return fmt.Errorf("compressing quick-load snapshot: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing lz4 writer: %w", err)
	}

	return os.WriteFile(filepath.Join(dir, key+".bin"), compressed.Bytes(), 0o644)
}

// LoadQuickLoad reads back a snapshot saved by SaveQuickLoad, rebuilding
// the Pack's lookup indices. ok is false (with no error) on a cache miss.
func LoadQuickLoad(key string) (pack *xmlpack.Pack, ok bool, err error) {
	path := filepath.Join(quickLoadCacheDir(), key+".bin")
	compressed, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	reader := lz4.NewReader(bytes.NewReader(compressed))
	var raw bytes.Buffer
	if _, err := io.Copy(&raw, reader); err != nil {
		return nil, false, fmt.Errorf("decompressing quick-load snapshot: %w", err)
	}

	var gp gobPack
	if err := gob.NewDecoder(&raw).Decode(&gp); err != nil {
		return nil, false, fmt.Errorf("decoding quick-load snapshot: %w", err)
	}

	return fromGobPack(gp), true, nil
}

func toGobPack(pack *xmlpack.Pack) gobPack {
	return gobPack{
		Categories: pack.Categories,
		Markers:    pack.Markers,
		Trails:     pack.Trails,
		Tbins:      pack.Tbins,
		Textures:   pack.Textures,
	}
}

func fromGobPack(gp gobPack) *xmlpack.Pack {
	pack := xmlpack.NewFromParts(gp.Categories, gp.Markers, gp.Trails, gp.Tbins, gp.Textures)
	return pack
}
