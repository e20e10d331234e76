package pdb

import "bytes"

// RawString is a borrowed byte string read from a PDB. It is usually ASCII
// but nothing guarantees it is valid UTF-8.
type RawString []byte

// String converts the bytes to a Go string without reinterpreting them.
func (s RawString) String() string { return string(s) }

// Equal reports whether s and o hold the same bytes.
func (s RawString) Equal(o RawString) bool { return bytes.Equal(s, o) }
