// Package yaml provides YAML-based tap definition parsing and loading.
package yaml

import (
	"fmt"

	"github.com/dickwu/homebrew-cloudconfig/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlDefinition represents the raw formula.yml structure
type yamlDefinition struct {
	Name                 string        `yaml:"name"`
	Description          string        `yaml:"description"`
	Homepage             string        `yaml:"homepage"`
	License              string        `yaml:"license"`
	GitHub               yamlGitHub    `yaml:"github"`
	Binary               string        `yaml:"binary"`
	PostInstallBootstrap bool          `yaml:"post_install_bootstrap"`
	BootstrapEnv         yamlBootstrap `yaml:"bootstrap_env"`
}

type yamlGitHub struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
}

type yamlBootstrap struct {
	ListenAddr           string `yaml:"listen_addr"`
	DatabaseURL          string `yaml:"database_url"`
	AuthToken            string `yaml:"auth_token"`
	MaxClockDriftSeconds int    `yaml:"max_clock_drift_seconds"`
	MaxBodySizeBytes     int    `yaml:"max_body_size_bytes"`
}

// DefinitionParser parses YAML tap definition files
type DefinitionParser struct{}

// NewDefinitionParser creates a new YAML parser
func NewDefinitionParser() *DefinitionParser {
	return &DefinitionParser{}
}

// Parse parses YAML bytes into a FormulaDefinition entity. Keys absent from
// the document keep the compiled-in CloudConfig defaults, so a partial
// formula.yml only overrides what it names.
func (p *DefinitionParser) Parse(data []byte) (*entities.FormulaDefinition, error) {
	raw := rawFromDefaults(entities.DefaultDefinition())
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if raw.Name == "" {
		return nil, fmt.Errorf("formula definition must have a name")
	}
	if raw.Binary == "" {
		return nil, fmt.Errorf("formula definition must name an installed binary")
	}

	return raw.toEntity(), nil
}

func rawFromDefaults(def *entities.FormulaDefinition) yamlDefinition {
	return yamlDefinition{
		Name:        def.Name,
		Description: def.Description,
		Homepage:    def.Homepage,
		License:     def.License,
		GitHub: yamlGitHub{
			Owner: def.Owner,
			Repo:  def.Repo,
		},
		Binary:               def.Binary,
		PostInstallBootstrap: def.PostInstallBootstrap,
		BootstrapEnv: yamlBootstrap{
			ListenAddr:           def.Bootstrap.ListenAddr,
			DatabaseURL:          def.Bootstrap.DatabaseURL,
			AuthToken:            def.Bootstrap.AuthToken,
			MaxClockDriftSeconds: def.Bootstrap.MaxClockDriftSeconds,
			MaxBodySizeBytes:     def.Bootstrap.MaxBodySizeBytes,
		},
	}
}

func (raw yamlDefinition) toEntity() *entities.FormulaDefinition {
	return &entities.FormulaDefinition{
		Name:                 raw.Name,
		Description:          raw.Description,
		Homepage:             raw.Homepage,
		License:              raw.License,
		Owner:                raw.GitHub.Owner,
		Repo:                 raw.GitHub.Repo,
		Binary:               raw.Binary,
		PostInstallBootstrap: raw.PostInstallBootstrap,
		Bootstrap: entities.BootstrapConfig{
			ListenAddr:           raw.BootstrapEnv.ListenAddr,
			DatabaseURL:          raw.BootstrapEnv.DatabaseURL,
			AuthToken:            raw.BootstrapEnv.AuthToken,
			MaxClockDriftSeconds: raw.BootstrapEnv.MaxClockDriftSeconds,
			MaxBodySizeBytes:     raw.BootstrapEnv.MaxBodySizeBytes,
		},
	}
}
