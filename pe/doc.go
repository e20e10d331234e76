// Package pe decodes the PE image section headers that PDB files embed so a
// debugger can map relative virtual addresses to sections without the image.
//
// # Section headers
//
// A section header is a fixed 40-byte little-endian record. ParseSectionHeader
// reads one from any Cursor, normally a *pdb.ParseBuffer:
//
//	pb := pdb.NewParseBuffer(stream)
//	h, err := pe.ParseSectionHeader(pb)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(h.ShortName()) // ".text"
//
// Any 40 bytes decode successfully. Field values are never checked against
// each other or against the surrounding image, and the Characteristics
// bitmask is kept as an opaque value.
//
// # Names
//
// ShortName trims the 8-byte name field at the first NUL and returns a view
// that aliases the header. Names longer than eight bytes are stored as "/"
// followed by a decimal string-table offset; LongNameOffset parses that
// offset, and looking it up is left to the caller.
//
// # Section tables
//
// PDB section-header streams are a bare array of records. ParseSectionTable
// decodes a whole stream and offers the 1-based section:offset to RVA
// mapping used by CodeView symbols.
package pe
