package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dickwu/homebrew-cloudconfig/internal/domain-adapters/gateways"
	"github.com/dickwu/homebrew-cloudconfig/internal/domain/entities"
	"github.com/dickwu/homebrew-cloudconfig/internal/domain/services"
	"github.com/dickwu/homebrew-cloudconfig/internal/external-adapters/ruby"
	"github.com/dickwu/homebrew-cloudconfig/internal/external-adapters/yaml"
)

func main() {
	fs := flag.NewFlagSet("update-formula", flag.ExitOnError)
	var (
		output     = fs.String("output", "Formula/cloudconfig.rb", "Path of the formula file to overwrite")
		definition = fs.String("definition", "formula.yml", "Path to the tap definition YAML (compiled-in defaults if missing)")
		dryRun     = fs.Bool("dry-run", false, "Render the formula to stdout without writing the file")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: update-formula [options] <version-tag> <arm-sha256> <x86-sha256>

Regenerate the Homebrew formula with updated URLs and SHA256 hashes.
Called by CI during release.

Arguments:
  version-tag  Release tag, e.g. v1.2.3
  arm-sha256   Checksum of the aarch64-apple-darwin tarball
  x86-sha256   Checksum of the x86_64-apple-darwin tarball

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  update-formula v1.2.3 abc123... def456...
  update-formula --dry-run v1.2.3 abc123... def456...
  update-formula --output Formula/cloudconfig.rb v1.2.3 abc123... def456...
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	svc := services.NewFormulaService()

	// Checksum and tag contents are embedded as-is; only arity is checked.
	release, err := svc.ParseArgs(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: %s <version-tag> <arm-sha256> <x86-sha256>\n", fs.Name())
		os.Exit(1)
	}

	if err := executeUpdate(context.Background(), svc, release, *definition, *output, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func executeUpdate(ctx context.Context, svc *services.FormulaService, release *entities.Release, definitionPath, outputPath string, dryRun bool) error {
	def, err := yaml.NewDefinitionRepository(definitionPath).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tap definition: %w", err)
	}

	content, err := ruby.NewRenderer().Render(svc.Resolve(def, release))
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Print(content)
		return nil
	}

	if err := gateways.NewFormulaWriter().Write(outputPath, content); err != nil {
		return err
	}

	fmt.Printf("✅ Updated %s to %s\n", outputPath, release.Tag)
	return nil
}
