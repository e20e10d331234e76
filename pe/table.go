package pe

import (
	"fmt"
	"math"

	"github.com/xmoeproject/pdb"
)

// SectionTable is the decoded contents of a PDB section-header stream.
// Section numbers are 1-based, matching the segment field of CodeView symbols.
type SectionTable struct {
	headers []SectionHeader
}

// ParseSectionTable decodes consecutive section headers until data is
// exhausted. A trailing partial record is reported as a short buffer.
func ParseSectionTable(data []byte) (*SectionTable, error) {
	count := len(data) / SectionHeaderSize
	if count > math.MaxUint16 {
		return nil, &pdb.Error{
			Kind: pdb.ErrKindOutOfRange,
			Msg:  fmt.Sprintf("section table holds %d records, more than %d", count, math.MaxUint16),
		}
	}

	pb := pdb.NewParseBuffer(data)
	headers := make([]SectionHeader, 0, count)
	for !pb.IsEmpty() {
		h, err := ParseSectionHeader(pb)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", len(headers)+1, err)
		}
		headers = append(headers, h)
	}
	return &SectionTable{headers: headers}, nil
}

// Len returns the number of sections.
func (t *SectionTable) Len() int {
	return len(t.headers)
}

// Headers returns every header in stream order. The slice is shared with t.
func (t *SectionTable) Headers() []SectionHeader {
	return t.headers
}

// Section returns the header for the 1-based section number.
func (t *SectionTable) Section(section uint16) (*SectionHeader, error) {
	if section == 0 || int(section) > len(t.headers) {
		return nil, &pdb.Error{
			Kind: pdb.ErrKindOutOfRange,
			Msg:  fmt.Sprintf("section %d not in table of %d", section, len(t.headers)),
		}
	}
	return &t.headers[section-1], nil
}

// ToRVA converts a section:offset pair to a relative virtual address.
// ok is false when the section does not exist or the sum overflows.
func (t *SectionTable) ToRVA(section uint16, offset uint32) (rva uint32, ok bool) {
	h, err := t.Section(section)
	if err != nil {
		return 0, false
	}
	if offset > math.MaxUint32-h.VirtualAddress {
		return 0, false
	}
	return h.VirtualAddress + offset, true
}

// FindSection returns the 1-based section containing rva and the offset of
// rva within it. A section spans VirtualSize bytes, or SizeOfRawData when
// VirtualSize is zero. The first matching section wins.
func (t *SectionTable) FindSection(rva uint32) (section uint16, offset uint32, ok bool) {
	for i := range t.headers {
		h := &t.headers[i]
		size := h.VirtualSize()
		if size == 0 {
			size = h.SizeOfRawData
		}
		if rva >= h.VirtualAddress && rva-h.VirtualAddress < size {
			return uint16(i + 1), rva - h.VirtualAddress, true
		}
	}
	return 0, 0, false
}
