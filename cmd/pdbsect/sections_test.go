package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmoeproject/pdb"
)

func TestSectionsCommand(t *testing.T) {
	resetFlags(t, false)
	path := writeStream(t)

	output, err := captureOutput(t, func() error {
		return runSections([]string{path})
	})
	require.NoError(t, err)

	assert.Contains(t, output, "3 sections:")
	assert.Contains(t, output, ".text")
	assert.Contains(t, output, ".data")
	assert.Contains(t, output, "/4")
	assert.Contains(t, output, "0x001ED000")
	assert.Contains(t, output, "0xC8000040")
}

func TestSectionsCommandJSON(t *testing.T) {
	resetFlags(t, true)
	path := writeStream(t)

	output, err := captureOutput(t, func() error {
		return runSections([]string{path})
	})
	require.NoError(t, err)

	var got []sectionJSON
	decodeJSON(t, output, &got)
	require.Len(t, got, len(testSections))
	for i, s := range testSections {
		assert.Equal(t, uint16(i+1), got[i].Section)
		assert.Equal(t, s.name, got[i].Name)
		assert.Equal(t, s.virtualSize, got[i].VirtualSize)
		assert.Equal(t, s.virtualAddr, got[i].VirtualAddress)
		assert.Equal(t, s.rawSize, got[i].SizeOfRawData)
		assert.Equal(t, s.rawPtr, got[i].PointerToRawData)
		assert.Equal(t, s.flags, got[i].Characteristics)
	}
}

func TestSectionsCommandQuiet(t *testing.T) {
	resetFlags(t, false)
	quiet = true
	path := writeStream(t)

	output, err := captureOutput(t, func() error {
		return runSections([]string{path})
	})
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestSectionsCommandTruncatedStream(t *testing.T) {
	resetFlags(t, false)
	path := writeStream(t)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-3], 0o644))

	_, err = captureOutput(t, func() error {
		return runSections([]string{path})
	})
	require.ErrorIs(t, err, pdb.ErrShortBuffer)
	assert.Contains(t, err.Error(), "section 3")
}

func TestSectionsCommandMissingFile(t *testing.T) {
	resetFlags(t, false)

	_, err := captureOutput(t, func() error {
		return runSections([]string{filepath.Join(t.TempDir(), "nope.bin")})
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}
