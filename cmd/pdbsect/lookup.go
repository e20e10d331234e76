package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newRVACmd())
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <stream> <rva>",
		Short: "Find the section containing a relative virtual address",
		Long: `The lookup command prints the 1-based section number and offset that
contain the given RVA, along with the section name.

Example:
  pdbsect lookup section_headers.bin 0x1ed010`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
	return cmd
}

func newRVACmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rva <stream> <section> <offset>",
		Short: "Convert a section:offset pair to a relative virtual address",
		Example: `  pdbsect rva section_headers.bin 2 0x10`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRVA(args)
		},
	}
	return cmd
}

type addressJSON struct {
	RVA     uint32 `json:"rva"`
	Section uint16 `json:"section"`
	Offset  uint32 `json:"offset"`
	Name    string `json:"name"`
}

func runLookup(args []string) error {
	rva, err := parseUint32("rva", args[1])
	if err != nil {
		return err
	}
	tbl, err := loadTable(args[0])
	if err != nil {
		return err
	}

	section, offset, ok := tbl.FindSection(rva)
	if !ok {
		return fmt.Errorf("rva 0x%08X is not inside any of %d sections", rva, tbl.Len())
	}
	h, err := tbl.Section(section)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(addressJSON{RVA: rva, Section: section, Offset: offset, Name: h.NameString()})
	}
	printInfo("%04X:%08X %s+0x%X\n", section, offset, h.NameString(), offset)
	return nil
}

func runRVA(args []string) error {
	section, err := parseUint32("section", args[1])
	if err != nil {
		return err
	}
	if section > 0xFFFF {
		return fmt.Errorf("invalid section %d: section numbers are 16-bit", section)
	}
	offset, err := parseUint32("offset", args[2])
	if err != nil {
		return err
	}
	tbl, err := loadTable(args[0])
	if err != nil {
		return err
	}

	h, err := tbl.Section(uint16(section))
	if err != nil {
		return err
	}
	rva, ok := tbl.ToRVA(uint16(section), offset)
	if !ok {
		return fmt.Errorf("offset 0x%X overflows section %d", offset, section)
	}

	if jsonOut {
		return printJSON(addressJSON{RVA: rva, Section: uint16(section), Offset: offset, Name: h.NameString()})
	}
	printInfo("0x%08X\n", rva)
	return nil
}
