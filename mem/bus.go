// Package mem implements the Intel 8080 address space: a flat 64 KiB byte
// array plus the 8-bit port-in/port-out surface peripherals exchange data
// through.
package mem

import (
	"fmt"
	"os"
)

const ramSize = 64 * 1024

// A Bus is the central object connecting the Cpu to memory and peripherals.
// Unlike main memory, the port surface (latch table and mailbox) may be
// touched from a peripheral goroutine while the Cpu driver goroutine is
// between Step calls, so it is guarded by its own mutex; the 64 KiB RAM
// array itself is not, since only the single Cpu driver goroutine ever
// touches it (see spec §5).
type Bus struct {
	Ram [ramSize]byte // zeroed on init

	romEnabled bool
	romStart   uint16
	romEnd     uint16 // inclusive

	ports portSurface
}

// SetROMWindow marks the inclusive byte range [start,end] as read-only.
// Writes inside the window are silently dropped; reads are unaffected.
func (b *Bus) SetROMWindow(start, end uint16) {
	b.romEnabled = true
	b.romStart = start
	b.romEnd = end
}

// ClearROMWindow removes any previously configured ROM window.
func (b *Bus) ClearROMWindow() {
	b.romEnabled = false
}

func (b *Bus) inROMWindow(addr uint16) bool {
	return b.romEnabled && addr >= b.romStart && addr <= b.romEnd
}

// ReadByte returns the byte stored at addr.
func (b *Bus) ReadByte(addr uint16) byte {
	return b.Ram[addr]
}

// WriteByte stores data at addr, unless addr falls inside the ROM window.
func (b *Bus) WriteByte(addr uint16, data byte) {
	if b.inROMWindow(addr) {
		return
	}
	b.Ram[addr] = data
}

// ReadWord returns the little-endian 16-bit value at addr, addr+1. Address
// arithmetic wraps modulo 2^16.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Ram[addr]
	hi := b.Ram[addr+1]
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores data at addr, addr+1 in little-endian order. If either
// byte of the pair falls inside the ROM window, the whole word write is
// dropped -- a straddling write is rejected wholesale, never split.
func (b *Bus) WriteWord(addr uint16, data uint16) {
	if b.inROMWindow(addr) || b.inROMWindow(addr+1) {
		return
	}
	b.Ram[addr] = byte(data)
	b.Ram[addr+1] = byte(data >> 8)
}

// LoadImage bulk-copies a flat binary file into memory starting at origin.
func (b *Bus) LoadImage(path string, origin uint16) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}

	size := info.Size()
	if int64(origin)+size > ramSize {
		return fmt.Errorf("load image: %d bytes at origin %#04x overflows the address space", size, origin)
	}

	if _, err := f.Read(b.Ram[origin : int64(origin)+size]); err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	return nil
}
