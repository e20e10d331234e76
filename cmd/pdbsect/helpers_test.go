package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xmoeproject/pdb/internal/format"
)

type testSection struct {
	name        string
	virtualSize uint32
	virtualAddr uint32
	rawSize     uint32
	rawPtr      uint32
	flags       uint32
}

var testSections = []testSection{
	{".text", 0x1200, 0x1000, 0x1400, 0x400, 0x60000020},
	{".data", 0x93548, 0x1ED000, 0xFE00, 0x1EA200, 0xC8000040},
	{"/4", 0x10, 0x281000, 0x200, 0x1FA000, 0x42000040},
}

// writeStream writes testSections as a raw section-header stream and
// returns its path.
func writeStream(t *testing.T) string {
	t.Helper()
	var stream []byte
	for _, s := range testSections {
		rec := make([]byte, format.SectionHeaderSize)
		copy(rec[format.SectionNameOffset:], s.name)
		format.PutU32(rec, format.SectionPhysicalAddressOffset, s.virtualSize)
		format.PutU32(rec, format.SectionVirtualAddressOffset, s.virtualAddr)
		format.PutU32(rec, format.SectionSizeOfRawDataOffset, s.rawSize)
		format.PutU32(rec, format.SectionPointerToRawDataOffset, s.rawPtr)
		format.PutU32(rec, format.SectionCharacteristicsOffset, s.flags)
		stream = append(stream, rec...)
	}
	path := filepath.Join(t.TempDir(), "section_headers.bin")
	require.NoError(t, os.WriteFile(path, stream, 0o644))
	return path
}

// resetFlags restores global flag state between test cases.
func resetFlags(t *testing.T, asJSON bool) {
	t.Helper()
	verbose = false
	quiet = false
	jsonOut = asJSON
	t.Cleanup(func() { jsonOut = false })
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	return buf.String(), fnErr
}

// decodeJSON checks that output is valid JSON and decodes it into v
func decodeJSON(t *testing.T, output string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(output), v), "output: %s", output)
}
