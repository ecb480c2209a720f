package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Fixed slot widths of the persisted record layouts.
const (
	IdentitySlotSize = 32
	MintSlotSize     = 32
	LengthPrefixSize = 4
)

// LayoutWriter appends little-endian fixed-width fields. Variable-length
// strings occupy a 4-byte length prefix plus a zero-padded slot of their max size.
type LayoutWriter struct {
	buf []byte
}

func NewLayoutWriter(size int) *LayoutWriter {
	return &LayoutWriter{buf: make([]byte, 0, size)}
}

func (w *LayoutWriter) PutIdentity(addr sdk.AccAddress) *LayoutWriter {
	return w.putSlot(addr, IdentitySlotSize)
}

func (w *LayoutWriter) PutMint(denom string) *LayoutWriter {
	return w.putSlot([]byte(denom), MintSlotSize)
}

func (w *LayoutWriter) PutString(s string, max int) *LayoutWriter {
	var prefix [LengthPrefixSize]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(s)))
	w.buf = append(w.buf, prefix[:]...)
	return w.putSlot([]byte(s), max)
}

func (w *LayoutWriter) PutUint8(v uint8) *LayoutWriter {
	w.buf = append(w.buf, v)
	return w
}

func (w *LayoutWriter) PutBool(v bool) *LayoutWriter {
	if v {
		return w.PutUint8(1)
	}
	return w.PutUint8(0)
}

func (w *LayoutWriter) PutUint16(v uint16) *LayoutWriter {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return w
}

func (w *LayoutWriter) PutUint64(v uint64) *LayoutWriter {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return w
}

func (w *LayoutWriter) PutInt64(v int64) *LayoutWriter {
	return w.PutUint64(uint64(v))
}

func (w *LayoutWriter) Bytes() []byte {
	return w.buf
}

// putSlot writes at most size bytes of b, zero padded to size.
func (w *LayoutWriter) putSlot(b []byte, size int) *LayoutWriter {
	slot := make([]byte, size)
	copy(slot, b)
	w.buf = append(w.buf, slot...)
	return w
}
