package utils

import (
	"encoding/binary"
	"fmt"
	"math"
)

// BufStack is a forward-only little-endian reader over a fixed buffer.
// Every read is bounds checked and a failed read leaves the position untouched.
type BufStack struct {
	buf  []byte
	pos  int
	kind string
	name string
}

func NewBufStack(kind string, b []byte) *BufStack {
	return &BufStack{
		buf:  b,
		kind: kind,
	}
}

func (bs *BufStack) SetName(name string) *BufStack {
	bs.name = name
	return bs
}

func (bs *BufStack) Name() string {
	return bs.name
}

func (bs *BufStack) Kind() string {
	return bs.kind
}

func (bs *BufStack) Size() int {
	return len(bs.buf)
}

func (bs *BufStack) Pos() int {
	return bs.pos
}

// Left returns amount of bytes not consumed yet
func (bs *BufStack) Left() int {
	return len(bs.buf) - bs.pos
}

func (bs *BufStack) String() string {
	return fmt.Sprintf("buf<%v>(%v)[pos:0x%x,size:0x%x]", bs.kind, bs.name, bs.pos, len(bs.buf))
}

func (bs *BufStack) truncated(amount int64) error {
	return &TruncatedInputError{
		Kind:      bs.kind,
		Name:      bs.name,
		Offset:    bs.pos,
		Requested: amount,
		Available: bs.Left(),
	}
}

// Need verifies that amount bytes can be read without consuming them.
// Used to reject oversized record counts before allocation.
func (bs *BufStack) Need(amount int64) error {
	if amount < 0 || amount > int64(bs.Left()) {
		return bs.truncated(amount)
	}
	return nil
}

// Read returns next amount bytes. Returned slice shares memory with buffer.
func (bs *BufStack) Read(amount int) ([]byte, error) {
	if err := bs.Need(int64(amount)); err != nil {
		return nil, err
	}
	oldPos := bs.pos
	bs.pos += amount
	return bs.buf[oldPos:bs.pos:bs.pos], nil
}

// ReadRemaining consumes everything up to the end of buffer. Never fails.
func (bs *BufStack) ReadRemaining() []byte {
	b := bs.buf[bs.pos:]
	bs.pos = len(bs.buf)
	return b
}

func (bs *BufStack) ReadLU32() (uint32, error) {
	b, err := bs.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (bs *BufStack) ReadLI32() (int32, error) {
	v, err := bs.ReadLU32()
	return int32(v), err
}

func (bs *BufStack) ReadLU16() (uint16, error) {
	b, err := bs.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (bs *BufStack) ReadLI16() (int16, error) {
	v, err := bs.ReadLU16()
	return int16(v), err
}

func (bs *BufStack) ReadByte() (byte, error) {
	b, err := bs.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (bs *BufStack) ReadLF() (float32, error) {
	v, err := bs.ReadLU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadLFs fills every destination in order
func (bs *BufStack) ReadLFs(dst ...*float32) error {
	for _, d := range dst {
		v, err := bs.ReadLF()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}
