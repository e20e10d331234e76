//go:build windows

// Package mmfile provides platform-specific helpers for mapping PDB stream
// files read-only.
package mmfile

import "os"

// Map reads the entire file into memory.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
