//go:build windows

package mlink

import "unsafe"

// unsafeSlice views the mapped file region as a byte slice without copying.
// Callers must copy out of it promptly; the backing memory is owned by the
// OS mapping and can be unmapped from under a retained slice.
func unsafeSlice(addr uintptr, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
}
