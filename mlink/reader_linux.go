//go:build linux

package mlink

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// linuxReader reads the tmpfs file a compatibility-layer helper process
// writes MumbleLink into when GW2 runs under Wine/Proton (spec section
// 4.1's "Linux" platform variant). The file holds the same fixed layout
// plus a trailing little-endian u32 X11 window id, grounded on the
// original's /dev/shm/<link_name> convention.
type linuxReader struct {
	path string
	f    *os.File
}

const shmDir = "/dev/shm"

func newPlatformReader(linkName string) (platformReader, error) {
	path := filepath.Join(shmDir, linkName)
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("mlink: open %s: %w", path, err)
	}
	return &linuxReader{path: path, f: f}, nil
}

func (r *linuxReader) readBlock() ([]byte, uint32, error) {
	buf := make([]byte, linkBlockSize+4)
	if _, err := r.f.Seek(0, 0); err != nil {
		return nil, 0, fmt.Errorf("mlink: seek %s: %w", r.path, err)
	}
	n, err := r.f.Read(buf)
	if err != nil {
		return nil, 0, fmt.Errorf("mlink: read %s: %w", r.path, err)
	}
	if n < linkBlockSize {
		return nil, 0, fmt.Errorf("mlink: short read from %s: got %d bytes", r.path, n)
	}
	var windowID uint32
	if n >= linkBlockSize+4 {
		windowID = binary.LittleEndian.Uint32(buf[linkBlockSize:])
	}
	return buf[:linkBlockSize], windowID, nil
}

func (r *linuxReader) close() error {
	return r.f.Close()
}
