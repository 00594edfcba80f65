package packstore

import (
	"os"
	"path/filepath"
	"testing"

	"jokolay/xmlpack"
)

func TestQuickLoadRoundTrip(t *testing.T) {
	pack := xmlpack.NewFromParts(
		[]xmlpack.Category{{ID: 0, ParentID: xmlpack.NoCategory, Path: "root", DefaultToggle: true}},
		[]xmlpack.Marker{{GUID: xmlpack.NewGUID(), CategoryID: 0, MapID: 15, Position: xmlpack.Vec3{X: 1, Y: 2, Z: 3}}},
		nil,
		[]xmlpack.Tbin{{MapID: 15, Points: []xmlpack.Vec3{{X: 1}, {X: 2}}}},
		[]xmlpack.Texture{{Path: "icon.png", Width: 1, Height: 1, Pixels: []byte{1, 2, 3, 4}}},
	)

	if err := SaveQuickLoad("testkey", pack); err != nil {
		t.Fatalf("SaveQuickLoad: %v", err)
	}

	loaded, ok, err := LoadQuickLoad("testkey")
	if err != nil {
		t.Fatalf("LoadQuickLoad: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if len(loaded.Markers) != 1 || loaded.Markers[0].MapID != 15 {
		t.Fatalf("markers not round-tripped correctly: %+v", loaded.Markers)
	}
	if len(loaded.Textures) != 1 || loaded.Textures[0].Path != "icon.png" {
		t.Fatalf("textures not round-tripped correctly: %+v", loaded.Textures)
	}
}

func TestQuickLoadMissReturnsNoError(t *testing.T) {
	_, ok, err := LoadQuickLoad("does-not-exist")
	if err != nil {
		t.Fatalf("expected no error on cache miss, got %v", err)
	}
	if ok {
		t.Fatal("expected ok=false on cache miss")
	}
}

func TestQuickLoadKeyChangesWithMtime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.zip")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}
	k1, err := QuickLoadKey(path)
	if err != nil {
		t.Fatalf("QuickLoadKey: %v", err)
	}
	if err := os.WriteFile(path, []byte("version 2, different size"), 0o644); err != nil {
		t.Fatal(err)
	}
	k2, err := QuickLoadKey(path)
	if err != nil {
		t.Fatalf("QuickLoadKey: %v", err)
	}
	if k1 == k2 {
		t.Error("expected cache key to change when the source file's size/mtime changes")
	}
}
