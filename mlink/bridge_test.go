package mlink

import (
	"testing"
	"time"
)

type fakeReader struct {
	blocks   [][]byte
	windowID uint32
	i        int
	err      error
}

func (f *fakeReader) readBlock() ([]byte, uint32, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	if f.i >= len(f.blocks) {
		return f.blocks[len(f.blocks)-1], f.windowID, nil
	}
	b := f.blocks[f.i]
	f.i++
	return b, f.windowID, nil
}

func (f *fakeReader) close() error { return nil }

func newTestBridge(t *testing.T, r platformReader) *Bridge {
	t.Helper()
	return &Bridge{linkName: "test", reader: r, lastGoodPollTime: time.Now(), gameDetected: true}
}

func TestPollReturnsNilWhenTickUnchanged(t *testing.T) {
	block := buildBlock(t, 1, 15, MountNone, "")
	r := &fakeReader{blocks: [][]byte{block, block}}
	b := newTestBridge(t, r)

	now := time.Now()
	snap, err := b.Poll(now)
	if err != nil {
		t.Fatalf("first poll: %v", err)
	}
	if snap == nil {
		t.Fatal("first poll with nonzero ui_tick should yield a snapshot")
	}

	snap2, err := b.Poll(now)
	if err != nil {
		t.Fatalf("second poll: %v", err)
	}
	if snap2 != nil {
		t.Fatal("second poll with unchanged ui_tick should return nil")
	}
}

func TestPollReturnsSnapshotWhenTickChanges(t *testing.T) {
	b1 := buildBlock(t, 1, 15, MountNone, "")
	b2 := buildBlock(t, 2, 15, MountNone, "")
	r := &fakeReader{blocks: [][]byte{b1, b2}}
	b := newTestBridge(t, r)

	now := time.Now()
	if _, err := b.Poll(now); err != nil {
		t.Fatalf("first poll: %v", err)
	}
	snap, err := b.Poll(now)
	if err != nil {
		t.Fatalf("second poll: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot when ui_tick changes")
	}
	if snap.UITick != 2 {
		t.Errorf("UITick = %d, want 2", snap.UITick)
	}
}

func TestPollZeroTickIsNotInitialized(t *testing.T) {
	block := buildBlock(t, 0, 0, MountNone, "")
	r := &fakeReader{blocks: [][]byte{block}}
	b := newTestBridge(t, r)

	snap, err := b.Poll(time.Now())
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if snap != nil {
		t.Fatal("ui_tick == 0 should never yield a snapshot")
	}
}

func TestGameNotDetectedAfterThreshold(t *testing.T) {
	block := buildBlock(t, 0, 0, MountNone, "")
	r := &fakeReader{blocks: [][]byte{block}}
	b := newTestBridge(t, r)

	start := time.Now()
	if _, err := b.Poll(start); err != nil {
		t.Fatalf("poll: %v", err)
	}
	if !b.GameDetected() {
		t.Fatal("should still be considered detected before the threshold elapses")
	}

	later := start.Add(notDetectedThreshold + time.Second)
	if _, err := b.Poll(later); err != nil {
		t.Fatalf("poll: %v", err)
	}
	if b.GameDetected() {
		t.Fatal("expected game-not-detected after threshold with no good ticks")
	}
}

func TestPollChangesBitsetOnMapChange(t *testing.T) {
	b1 := buildBlock(t, 1, 15, MountNone, "")
	b2 := buildBlock(t, 2, 38, MountNone, "")
	r := &fakeReader{blocks: [][]byte{b1, b2}}
	b := newTestBridge(t, r)

	now := time.Now()
	if _, err := b.Poll(now); err != nil {
		t.Fatalf("first poll: %v", err)
	}
	snap, err := b.Poll(now)
	if err != nil {
		t.Fatalf("second poll: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot on map change")
	}
	if !snap.Changes.Has(ChangedMapID) {
		t.Error("expected ChangedMapID to be set")
	}
}
