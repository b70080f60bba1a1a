// Package entities defines the domain types for tap formula generation.
package entities

// Release identifies one published GitHub release of the upstream project.
// It is built from CLI arguments, used once to render the formula, and
// discarded. Checksums are carried verbatim and never validated.
type Release struct {
	Tag         string
	ARMChecksum string
	X86Checksum string
}

// ResolvedFormula carries everything the renderer substitutes into the
// formula template: the definition, the release, and all derived fields.
type ResolvedFormula struct {
	Definition *FormulaDefinition
	Release    *Release

	ClassName string
	Version   string
	BaseURL   string
	ARMURL    string
	X86URL    string
}
