package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <stream>",
		Short: "List every section header in a stream",
		Long: `The sections command decodes every section header in the stream and
prints its number, name, addresses, sizes and characteristics.

Names of the form /<offset> refer to a COFF string table and are printed
as stored.

Example:
  pdbsect sections section_headers.bin
  pdbsect sections section_headers.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
	return cmd
}

type sectionJSON struct {
	Section              uint16 `json:"section"`
	Name                 string `json:"name"`
	VirtualSize          uint32 `json:"virtual_size"`
	VirtualAddress       uint32 `json:"virtual_address"`
	SizeOfRawData        uint32 `json:"size_of_raw_data"`
	PointerToRawData     uint32 `json:"pointer_to_raw_data"`
	PointerToRelocations uint32 `json:"pointer_to_relocations"`
	PointerToLineNumbers uint32 `json:"pointer_to_line_numbers"`
	NumberOfRelocations  uint16 `json:"number_of_relocations"`
	NumberOfLineNumbers  uint16 `json:"number_of_line_numbers"`
	Characteristics      uint32 `json:"characteristics"`
}

func runSections(args []string) error {
	tbl, err := loadTable(args[0])
	if err != nil {
		return err
	}

	headers := tbl.Headers()
	if jsonOut {
		out := make([]sectionJSON, 0, len(headers))
		for i := range headers {
			h := &headers[i]
			out = append(out, sectionJSON{
				Section:              uint16(i + 1),
				Name:                 h.NameString(),
				VirtualSize:          h.VirtualSize(),
				VirtualAddress:       h.VirtualAddress,
				SizeOfRawData:        h.SizeOfRawData,
				PointerToRawData:     h.PointerToRawData,
				PointerToRelocations: h.PointerToRelocations,
				PointerToLineNumbers: h.PointerToLineNumbers,
				NumberOfRelocations:  h.NumberOfRelocations,
				NumberOfLineNumbers:  h.NumberOfLineNumbers,
				Characteristics:      h.Characteristics,
			})
		}
		return printJSON(out)
	}

	if quiet {
		return nil
	}

	printInfo("%d sections:\n\n", len(headers))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tVIRT ADDR\tVIRT SIZE\tRAW SIZE\tRAW PTR\tCHARACTERISTICS")
	for i := range headers {
		h := &headers[i]
		fmt.Fprintf(w, "%d\t%s\t0x%08X\t0x%08X\t0x%08X\t0x%08X\t0x%08X\n",
			i+1, h.NameString(), h.VirtualAddress, h.VirtualSize(),
			h.SizeOfRawData, h.PointerToRawData, h.Characteristics)
	}
	return w.Flush()
}
