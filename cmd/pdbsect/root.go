package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xmoeproject/pdb/internal/logger"
	"github.com/xmoeproject/pdb/internal/mmfile"
	"github.com/xmoeproject/pdb/pe"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "pdbsect",
	Short: "Inspect PE section headers stored in PDB streams",
	Long: `pdbsect decodes the PE section-header stream that program database
files carry, lists the sections and maps relative virtual addresses to
section:offset pairs and back.

The input is the raw stream contents: a sequence of 40-byte
IMAGE_SECTION_HEADER records.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{Enabled: verbose && !quiet, Level: slog.LevelDebug})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// loadTable maps path and decodes it as a section-header stream. Headers are
// copied out of the mapping, so it is released before returning.
func loadTable(path string) (*pe.SectionTable, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("failed to unmap section stream", "path", path, "error", err)
		}
	}()

	logger.Debug("mapped section stream", "path", path, "bytes", len(data))

	tbl, err := pe.ParseSectionTable(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	logger.Debug("parsed section table", "sections", tbl.Len())
	return tbl, nil
}

// parseUint32 accepts decimal or 0x-prefixed hexadecimal.
func parseUint32(what, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return uint32(v), nil
}
