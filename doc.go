// Package pdb provides the byte-level building blocks shared by the
// program database (PDB) decoders in this module.
//
// # Overview
//
// PDB streams are little-endian, unaligned byte runs. Decoders consume them
// through a ParseBuffer, a cursor over a caller-owned byte slice:
//
//	pb := pdb.NewParseBuffer(stream)
//	name, err := pb.Take(8)
//	if err != nil {
//	    return err
//	}
//	va, err := pb.U32()
//
// Every read either succeeds and advances the cursor or fails with an error
// of kind ErrKindShortBuffer and leaves the position where it was. Slices
// returned by Take alias the underlying buffer; no bytes are copied.
//
// # Errors
//
// Errors are *Error values carrying an ErrKind. Use errors.Is against the
// exported sentinels to branch on the category:
//
//	if errors.Is(err, pdb.ErrShortBuffer) {
//	    // truncated stream
//	}
//
// # Subpackages
//
//   - pe: PE section headers as embedded in PDB section-header streams
package pdb
