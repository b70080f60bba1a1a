package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/dickwu/homebrew-cloudconfig/internal/domain/entities"
)

// DefinitionRepository loads the tap definition from a YAML file
type DefinitionRepository struct {
	path   string
	parser *DefinitionParser
}

// NewDefinitionRepository creates a new YAML-based definition repository
func NewDefinitionRepository(path string) *DefinitionRepository {
	return &DefinitionRepository{
		path:   path,
		parser: NewDefinitionParser(),
	}
}

// Load reads and parses the definition file. A missing file is not an
// error: the compiled-in CloudConfig defaults apply, so CI can run without
// a checked-in formula.yml.
func (r *DefinitionRepository) Load(_ context.Context) (*entities.FormulaDefinition, error) {
	//nolint:gosec // G304: path is the tap definition location chosen by the operator
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return entities.DefaultDefinition(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", r.path, err)
	}

	return r.parser.Parse(data)
}
