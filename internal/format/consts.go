// Package format houses the on-disk layouts of the records decoded by this
// module. Decoders read fields sequentially through a cursor; the offsets here
// document the layout and let tests build synthetic records.
package format

const (
	// SectionHeaderSize is the encoded size of an IMAGE_SECTION_HEADER.
	// Layout (little-endian, no padding):
	//
	//	Offset  Size  Field
	//	0x00    8     Name (null-padded, or "/<decimal>" string-table reference)
	//	0x08    4     PhysicalAddress / VirtualSize
	//	0x0C    4     VirtualAddress
	//	0x10    4     SizeOfRawData
	//	0x14    4     PointerToRawData
	//	0x18    4     PointerToRelocations
	//	0x1C    4     PointerToLineNumbers
	//	0x20    2     NumberOfRelocations
	//	0x22    2     NumberOfLineNumbers
	//	0x24    4     Characteristics
	SectionHeaderSize = 0x28

	// SectionNameSize is the width of the fixed name field.
	SectionNameSize = 8

	SectionNameOffset                 = 0x00
	SectionPhysicalAddressOffset      = 0x08
	SectionVirtualAddressOffset       = 0x0C
	SectionSizeOfRawDataOffset        = 0x10
	SectionPointerToRawDataOffset     = 0x14
	SectionPointerToRelocationsOffset = 0x18
	SectionPointerToLineNumbersOffset = 0x1C
	SectionNumberOfRelocationsOffset  = 0x20
	SectionNumberOfLineNumbersOffset  = 0x22
	SectionCharacteristicsOffset      = 0x24

	// SectionLongNamePrefix marks a name that refers into the COFF string table.
	SectionLongNamePrefix = '/'
)
