package packstore

import (
	"testing"

	"jokolay/xmlpack"
)

func testPack(t *testing.T) *xmlpack.Pack {
	t.Helper()
	return xmlpack.NewFromParts(
		[]xmlpack.Category{
			{ID: 0, ParentID: xmlpack.NoCategory, Path: "root", DefaultToggle: true},
			{ID: 1, ParentID: 0, Path: "root.child", DefaultToggle: false},
		},
		nil, nil, nil, nil,
	)
}

func TestSelectionTreeSeedsFromDefaultToggle(t *testing.T) {
	pack := testPack(t)
	sel := NewSelectionTree(pack)
	if !sel.IsEnabled(0) {
		t.Error("root should start enabled (DefaultToggle true)")
	}
	if sel.IsEnabled(1) {
		t.Error("child should start disabled (DefaultToggle false)")
	}
}

func TestSelectionTreeAllEnabledRequiresWholeChain(t *testing.T) {
	pack := testPack(t)
	sel := NewSelectionTree(pack)
	sel.SetEnabled(0, false)
	sel.SetEnabled(1, true)
	if sel.AllEnabled(1) {
		t.Error("child enabled but root disabled should still require root to also be enabled")
	}
	sel.SetEnabled(0, true)
	if !sel.AllEnabled(1) {
		t.Error("expected AllEnabled once both root and child are enabled")
	}
}

func TestSelectionSnapshotRoundTrip(t *testing.T) {
	pack := testPack(t)
	sel := NewSelectionTree(pack)
	sel.SetEnabled(1, true)
	saved := sel.Snapshot()

	sel2 := NewSelectionTree(pack)
	sel2.ApplySaved(saved)
	if !sel2.IsEnabled(1) {
		t.Error("expected restored selection to re-enable child")
	}
}
