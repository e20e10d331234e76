// Command pdbsect inspects PE section-header streams extracted from PDB files.
package main

func main() {
	execute()
}
