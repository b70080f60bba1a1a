package yaml

import (
	"testing"
)

func TestDefinitionParser_Parse_Valid(t *testing.T) {
	parser := NewDefinitionParser()
	yamlData := []byte(`name: cloudconfig
description: Secure cloud configuration sync server
homepage: https://github.com/dickwu/CloudConfig
license: MIT
github:
  owner: dickwu
  repo: CloudConfig
binary: cloudconfig
post_install_bootstrap: true
bootstrap_env:
  listen_addr: 0.0.0.0:9090
  max_clock_drift_seconds: 600
`)

	def, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Name != "cloudconfig" {
		t.Errorf("Name = %v, want cloudconfig", def.Name)
	}
	if def.Owner != "dickwu" {
		t.Errorf("Owner = %v, want dickwu", def.Owner)
	}
	if def.Repo != "CloudConfig" {
		t.Errorf("Repo = %v, want CloudConfig", def.Repo)
	}
	if !def.PostInstallBootstrap {
		t.Error("PostInstallBootstrap should be true")
	}
	if def.Bootstrap.ListenAddr != "0.0.0.0:9090" {
		t.Errorf("Bootstrap.ListenAddr = %v, want 0.0.0.0:9090", def.Bootstrap.ListenAddr)
	}
	if def.Bootstrap.MaxClockDriftSeconds != 600 {
		t.Errorf("Bootstrap.MaxClockDriftSeconds = %v, want 600", def.Bootstrap.MaxClockDriftSeconds)
	}
}

func TestDefinitionParser_Parse_PartialKeepsDefaults(t *testing.T) {
	parser := NewDefinitionParser()

	def, err := parser.Parse([]byte("post_install_bootstrap: true\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !def.PostInstallBootstrap {
		t.Error("PostInstallBootstrap should be true")
	}
	if def.Name != "cloudconfig" {
		t.Errorf("Name = %v, want default cloudconfig", def.Name)
	}
	if def.License != "MIT" {
		t.Errorf("License = %v, want default MIT", def.License)
	}
	if def.Bootstrap.MaxClockDriftSeconds != 300 {
		t.Errorf("Bootstrap.MaxClockDriftSeconds = %v, want default 300", def.Bootstrap.MaxClockDriftSeconds)
	}
	if def.Bootstrap.MaxBodySizeBytes != 1048576 {
		t.Errorf("Bootstrap.MaxBodySizeBytes = %v, want default 1048576", def.Bootstrap.MaxBodySizeBytes)
	}
}

func TestDefinitionParser_Parse_EmptyDocumentIsDefaults(t *testing.T) {
	parser := NewDefinitionParser()

	def, err := parser.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Name != "cloudconfig" {
		t.Errorf("Name = %v, want cloudconfig", def.Name)
	}
	if def.PostInstallBootstrap {
		t.Error("PostInstallBootstrap should default to false")
	}
}

func TestDefinitionParser_Parse_Invalid(t *testing.T) {
	parser := NewDefinitionParser()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "malformed YAML",
			data: "name: [unclosed",
		},
		{
			name: "name cleared",
			data: `name: ""`,
		},
		{
			name: "binary cleared",
			data: `binary: ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}
