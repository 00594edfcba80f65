//go:build windows

package mlink

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// windowsReader maps the named file-mapping object GW2 creates for
// MumbleLink. Reads are volatile: the OS gives no synchronization guarantee
// beyond ui_tick monotonicity, matching spec section 4.1's "treat all other
// fields as valid only after confirming ui_tick changed."
type windowsReader struct {
	handle windows.Handle
	addr   uintptr
	size   uintptr
}

func newPlatformReader(linkName string) (platformReader, error) {
	namePtr, err := windows.UTF16PtrFromString(linkName)
	if err != nil {
		return nil, fmt.Errorf("mlink: invalid link name %q: %w", linkName, err)
	}

	handle, err := windows.OpenFileMapping(windows.FILE_MAP_ALL_ACCESS, false, namePtr)
	if err != nil {
		// The mapping only exists once GW2's MumbleLink feature is active.
		return nil, ErrNotInitialized
	}

	addr, err := windows.MapViewOfFile(handle, windows.FILE_MAP_ALL_ACCESS, 0, 0, uintptr(linkBlockSize))
	if err != nil {
		windows.CloseHandle(handle)
		return nil, fmt.Errorf("mlink: MapViewOfFile failed: %w", err)
	}

	return &windowsReader{handle: handle, addr: addr, size: uintptr(linkBlockSize)}, nil
}

func (r *windowsReader) readBlock() ([]byte, uint32, error) {
	if r.addr == 0 {
		return nil, 0, ErrNotInitialized
	}
	// Volatile copy out of the mapped view; the source is the game-owned
	// shared page and may be rewritten concurrently by GW2's writer thread.
	src := unsafeSlice(r.addr, int(r.size))
	block := make([]byte, len(src))
	copy(block, src)
	// Native Windows has no second process publishing an X11-style window
	// id alongside the link; ui_tick alone is the ordering contract.
	return block, 0, nil
}

func (r *windowsReader) close() error {
	if r.addr != 0 {
		_ = windows.UnmapViewOfFile(r.addr)
		r.addr = 0
	}
	if r.handle != 0 {
		err := windows.CloseHandle(r.handle)
		r.handle = 0
		return err
	}
	return nil
}
