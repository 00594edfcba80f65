package mlink

import (
	"errors"
	"log"
	"time"

	"jokolay/internal/ratelog"
)

// ErrNotInitialized is returned by Open when the shared-memory region the
// game publishes has not appeared yet (game not running, or hasn't reached
// the character-select/in-game state that initializes MumbleLink).
var ErrNotInitialized = errors.New("mlink: shared memory region not initialized")

// ErrUnsupportedPlatform is returned on platforms with no Link Bridge reader.
var ErrUnsupportedPlatform = errors.New("mlink: unsupported platform")

// notDetectedThreshold is how long a contiguous run of failed polls must
// last before the bridge surfaces a "game not detected" state (spec section
// 4.1's "persistent failure for >N seconds").
const notDetectedThreshold = 5 * time.Second

var logger = log.New(log.Writer(), "[mlink] ", log.LstdFlags)

// pollFailureLog caps poll/decode failure lines to 1/sec with a small
// burst, since a dead bridge is polled every frame and would otherwise
// fill stderr instantly.
var pollFailureLog = ratelog.New(logger, time.Second, 3)

// platformReader is the OS-specific half of the Link Bridge: read the raw
// block plus whatever window-identity token that platform uses to detect a
// different game instance publishing to the same link name.
type platformReader interface {
	// readBlock returns the raw MumbleLink bytes and a platform-specific
	// window identifier (an X11 window id under Wine/Proton, 0 on native
	// Windows where ui_tick alone disambiguates instances).
	readBlock() (block []byte, windowID uint32, err error)
	close() error
}

// Bridge polls a single MumbleLink shared-memory region and exposes the
// latest decoded Snapshot. It is not safe for concurrent use; the engine
// polls it once per frame from the render thread (spec section 5).
type Bridge struct {
	linkName string
	reader   platformReader

	prevSnapshot     Snapshot
	prevWindowID     uint32
	haveSnapshot     bool
	lastGoodPollTime time.Time
	gameDetected     bool
}

// Open attempts to attach to the named MumbleLink shared-memory region. It
// returns ErrNotInitialized if the region does not exist yet; the caller is
// expected to retry at >=1Hz per spec section 4.1.
func Open(linkName string) (*Bridge, error) {
	if linkName == "" {
		linkName = "MumbleLink"
	}
	r, err := newPlatformReader(linkName)
	if err != nil {
		return nil, err
	}
	return &Bridge{
		linkName:         linkName,
		reader:           r,
		lastGoodPollTime: time.Now(),
		gameDetected:     true,
	}, nil
}

// Close releases the underlying OS resource.
func (b *Bridge) Close() error {
	if b.reader == nil {
		return nil
	}
	return b.reader.close()
}

// Poll reads the current block. It returns (nil, nil) if ui_tick (and,
// where available, the window identifier) are unchanged since the previous
// poll; a Snapshot only when something actually changed. now is the caller's
// monotonic clock, used purely for the "game not detected" threshold.
func (b *Bridge) Poll(now time.Time) (*Snapshot, error) {
	block, windowID, err := b.reader.readBlock()
	if err != nil {
		b.noteFailure(now)
		pollFailureLog.Printf(now, "poll failed, keeping last known snapshot: %v", err)
		return nil, nil
	}

	cur, err := decodeBlock(block)
	if err != nil {
		b.noteFailure(now)
		pollFailureLog.Printf(now, "decode failed, keeping last known snapshot: %v", err)
		return nil, nil
	}
	cur.WindowIdentifier = windowID

	if cur.UITick == 0 {
		// Game process exists but hasn't written a tick yet.
		b.noteFailure(now)
		return nil, nil
	}

	b.lastGoodPollTime = now
	b.gameDetected = true

	if b.haveSnapshot && cur.UITick == b.prevSnapshot.UITick && windowID == b.prevWindowID {
		return nil, nil
	}

	cur.Changes = diff(b.prevSnapshot, cur)
	b.prevSnapshot = cur
	b.prevWindowID = windowID
	b.haveSnapshot = true

	snap := cur
	return &snap, nil
}

func (b *Bridge) noteFailure(now time.Time) {
	if now.Sub(b.lastGoodPollTime) > notDetectedThreshold {
		if b.gameDetected {
			logger.Printf("no MumbleLink update for >%s, surfacing game-not-detected", notDetectedThreshold)
		}
		b.gameDetected = false
	}
}

// GameDetected reports whether the bridge believes the game process is
// alive and publishing, used to surface the user-visible state from spec
// section 4.1/7. See also process.go's gopsutil-backed liveness probe for a
// stronger check that doesn't depend solely on the link going stale.
func (b *Bridge) GameDetected() bool {
	return b.gameDetected
}

// LastSnapshot returns the most recently decoded snapshot and whether one
// has ever been observed.
func (b *Bridge) LastSnapshot() (Snapshot, bool) {
	return b.prevSnapshot, b.haveSnapshot
}
