package pe

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/charmap"

	"github.com/xmoeproject/pdb"
	"github.com/xmoeproject/pdb/internal/format"
)

// SectionHeaderSize is the encoded size of a section header in bytes.
const SectionHeaderSize = format.SectionHeaderSize

// Cursor is the byte source ParseSectionHeader reads from. Each method must
// consume exactly the requested width or fail without advancing.
type Cursor interface {
	Take(n int) ([]byte, error)
	U16() (uint16, error)
	U32() (uint32, error)
}

// SectionHeader is a PE IMAGE_SECTION_HEADER. Fields appear in on-disk order.
type SectionHeader struct {
	// Name is either an ASCII name padded on the right with NULs (with no
	// terminator when exactly eight bytes long) or "/" followed by the
	// decimal string-table offset of a longer name.
	Name [format.SectionNameSize]byte

	// PhysicalAddress is the file address of the section. Images reuse this
	// slot for VirtualSize; see (*SectionHeader).VirtualSize.
	PhysicalAddress uint32

	// VirtualAddress is the address of the first byte of the section when
	// loaded, relative to the image base.
	VirtualAddress uint32

	// SizeOfRawData is the size of the initialized data on disk. Zero for
	// sections holding only uninitialized data.
	SizeOfRawData uint32

	// PointerToRawData is the file offset of the section's first page, or
	// zero when the section has no on-disk data.
	PointerToRawData uint32

	// PointerToRelocations is the file offset of the relocation entries, or
	// zero when there are none.
	PointerToRelocations uint32

	// PointerToLineNumbers is the file offset of the COFF line-number
	// entries, or zero when there are none.
	PointerToLineNumbers uint32

	// NumberOfRelocations is zero for executable images.
	NumberOfRelocations uint16

	NumberOfLineNumbers uint16

	// Characteristics is the raw IMAGE_SCN_* flag set.
	Characteristics uint32
}

func fieldErr(field string, err error) error {
	return fmt.Errorf("section header %s: %w", field, err)
}

// ParseSectionHeader decodes one section header from c, consuming exactly
// SectionHeaderSize bytes on success. On failure the error names the field
// whose read ran out of bytes and c must not be reused.
func ParseSectionHeader(c Cursor) (SectionHeader, error) {
	var (
		h   SectionHeader
		err error
	)

	name, err := c.Take(format.SectionNameSize)
	if err != nil {
		return SectionHeader{}, fieldErr("name", err)
	}
	copy(h.Name[:], name)

	if h.PhysicalAddress, err = c.U32(); err != nil {
		return SectionHeader{}, fieldErr("physical address", err)
	}
	if h.VirtualAddress, err = c.U32(); err != nil {
		return SectionHeader{}, fieldErr("virtual address", err)
	}
	if h.SizeOfRawData, err = c.U32(); err != nil {
		return SectionHeader{}, fieldErr("size of raw data", err)
	}
	if h.PointerToRawData, err = c.U32(); err != nil {
		return SectionHeader{}, fieldErr("pointer to raw data", err)
	}
	if h.PointerToRelocations, err = c.U32(); err != nil {
		return SectionHeader{}, fieldErr("pointer to relocations", err)
	}
	if h.PointerToLineNumbers, err = c.U32(); err != nil {
		return SectionHeader{}, fieldErr("pointer to line numbers", err)
	}
	if h.NumberOfRelocations, err = c.U16(); err != nil {
		return SectionHeader{}, fieldErr("number of relocations", err)
	}
	if h.NumberOfLineNumbers, err = c.U16(); err != nil {
		return SectionHeader{}, fieldErr("number of line numbers", err)
	}
	if h.Characteristics, err = c.U32(); err != nil {
		return SectionHeader{}, fieldErr("characteristics", err)
	}

	return h, nil
}

// ShortName returns the name field up to its first NUL byte, or all eight
// bytes when there is none. The result aliases h.Name.
func (h *SectionHeader) ShortName() pdb.RawString {
	if i := bytes.IndexByte(h.Name[:], 0); i >= 0 {
		return h.Name[:i:i]
	}
	return h.Name[:]
}

// NameString returns ShortName decoded as Windows-1252 for display. The
// conversion is lossy: bytes with no Windows-1252 mapping (0x81, 0x8D, 0x8F,
// 0x90, 0x9D) become U+FFFD, so use ShortName when the exact bytes matter.
func (h *SectionHeader) NameString() string {
	raw := h.ShortName()
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// VirtualSize returns the PhysicalAddress slot under the name images use for it.
func (h *SectionHeader) VirtualSize() uint32 {
	return h.PhysicalAddress
}

// HasLongName reports whether the name is a "/<offset>" string-table reference.
func (h *SectionHeader) HasLongName() bool {
	return h.Name[0] == format.SectionLongNamePrefix
}

// LongNameOffset returns the string-table offset encoded in a "/<decimal>"
// name. It fails with pdb.ErrKindFormat when the name is not of that form.
func (h *SectionHeader) LongNameOffset() (uint32, error) {
	name := h.ShortName()
	if !h.HasLongName() {
		return 0, &pdb.Error{
			Kind: pdb.ErrKindFormat,
			Msg:  fmt.Sprintf("section name %q is not a string table reference", name),
		}
	}
	digits := name[1:]
	if len(digits) == 0 {
		return 0, &pdb.Error{Kind: pdb.ErrKindFormat, Msg: "section name has no string table offset"}
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return 0, &pdb.Error{
				Kind: pdb.ErrKindFormat,
				Msg:  fmt.Sprintf("section name %q has a non-decimal string table offset", name),
			}
		}
	}
	off, err := strconv.ParseUint(string(digits), 10, 32)
	if err != nil {
		return 0, &pdb.Error{Kind: pdb.ErrKindFormat, Msg: "section name string table offset", Err: err}
	}
	return uint32(off), nil
}
