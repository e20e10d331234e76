package pdb

import (
	"fmt"

	"github.com/xmoeproject/pdb/internal/buf"
)

// ParseBuffer is a read cursor over a caller-owned byte slice. It is not safe
// for concurrent use; independent cursors over the same slice are.
type ParseBuffer struct {
	data []byte
	pos  int
}

// NewParseBuffer returns a cursor positioned at the first byte of b.
func NewParseBuffer(b []byte) *ParseBuffer {
	return &ParseBuffer{data: b}
}

// Pos returns the number of bytes consumed so far.
func (pb *ParseBuffer) Pos() int { return pb.pos }

// Len returns the number of bytes left to read.
func (pb *ParseBuffer) Len() int { return buf.Remaining(pb.data, pb.pos) }

// IsEmpty reports whether every byte has been consumed.
func (pb *ParseBuffer) IsEmpty() bool { return pb.Len() == 0 }

func (pb *ParseBuffer) short(n int) error {
	return &Error{
		Kind: ErrKindShortBuffer,
		Msg: fmt.Sprintf("unexpected end of buffer: need %d bytes at offset %d, have %d",
			n, pb.pos, pb.Len()),
	}
}

// Take returns the next n bytes and advances past them. The returned slice
// aliases the underlying buffer.
func (pb *ParseBuffer) Take(n int) ([]byte, error) {
	b, ok := buf.Slice(pb.data, pb.pos, n)
	if !ok {
		return nil, pb.short(n)
	}
	pb.pos += n
	return b, nil
}

// U8 reads one byte.
func (pb *ParseBuffer) U8() (uint8, error) {
	b, err := pb.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian uint16.
func (pb *ParseBuffer) U16() (uint16, error) {
	b, err := pb.Take(2)
	if err != nil {
		return 0, err
	}
	return buf.U16LE(b), nil
}

// U32 reads a little-endian uint32.
func (pb *ParseBuffer) U32() (uint32, error) {
	b, err := pb.Take(4)
	if err != nil {
		return 0, err
	}
	return buf.U32LE(b), nil
}

// U64 reads a little-endian uint64.
func (pb *ParseBuffer) U64() (uint64, error) {
	b, err := pb.Take(8)
	if err != nil {
		return 0, err
	}
	return buf.U64LE(b), nil
}

// I32 reads a little-endian int32.
func (pb *ParseBuffer) I32() (int32, error) {
	b, err := pb.Take(4)
	if err != nil {
		return 0, err
	}
	return buf.I32LE(b), nil
}
