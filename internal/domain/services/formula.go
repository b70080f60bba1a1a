// Package services contains the derivation rules for formula generation.
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dickwu/homebrew-cloudconfig/internal/domain/entities"
)

// Target triples of the macOS release artifacts.
const (
	TripleDarwinARM64 = "aarch64-apple-darwin"
	TripleDarwinAMD64 = "x86_64-apple-darwin"
)

// ErrUsage reports a wrong number of positional arguments.
var ErrUsage = errors.New("expected exactly 3 arguments: <version-tag> <arm-sha256> <x86-sha256>")

// FormulaService derives the rendered formula fields from a release.
type FormulaService struct{}

// NewFormulaService creates a new formula service.
func NewFormulaService() *FormulaService {
	return &FormulaService{}
}

// ParseArgs builds a Release from the positional CLI arguments.
// Only arity is checked; tag and checksum contents are embedded verbatim
// into the formula, empty or malformed values included.
func (s *FormulaService) ParseArgs(args []string) (*entities.Release, error) {
	if len(args) != 3 {
		return nil, ErrUsage
	}

	return &entities.Release{
		Tag:         args[0],
		ARMChecksum: args[1],
		X86Checksum: args[2],
	}, nil
}

// Resolve computes every derived field the template substitutes.
// The raw tag (leading 'v' intact) names the release path and artifact
// files; the stripped form is only the formula's declared version.
func (s *FormulaService) Resolve(def *entities.FormulaDefinition, rel *entities.Release) *entities.ResolvedFormula {
	base := fmt.Sprintf("https://github.com/%s/%s/releases/download/%s", def.Owner, def.Repo, rel.Tag)

	return &entities.ResolvedFormula{
		Definition: def,
		Release:    rel,
		ClassName:  className(def.Name),
		Version:    strings.TrimPrefix(rel.Tag, "v"),
		BaseURL:    base,
		ARMURL:     fmt.Sprintf("%s/%s", base, artifactName(def.Name, rel.Tag, TripleDarwinARM64)),
		X86URL:     fmt.Sprintf("%s/%s", base, artifactName(def.Name, rel.Tag, TripleDarwinAMD64)),
	}
}

// artifactName builds a release asset filename: name-tag-triple.tar.gz
func artifactName(name, tag, triple string) string {
	return fmt.Sprintf("%s-%s-%s.tar.gz", name, tag, triple)
}

// className maps a formula name to its Homebrew Ruby class name.
func className(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
