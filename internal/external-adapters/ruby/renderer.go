// Package ruby renders the Homebrew formula as Ruby source text.
package ruby

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dickwu/homebrew-cloudconfig/internal/domain/entities"
)

// formulaTemplate is the full formula file. The bootstrap variant adds a
// post_install block and a "start" service argument; both variants share
// one template so they cannot drift apart. Ruby-side interpolations such
// as #{etc} pass through untouched.
const formulaTemplate = `# typed: false
# frozen_string_literal: true

# This file is auto-updated by CI on each release. Do not edit manually.
class {{.ClassName}} < Formula
  desc "{{.Definition.Description}}"
  homepage "{{.Definition.Homepage}}"
  version "{{.Version}}"
  license "{{.Definition.License}}"

  on_macos do
    on_arm do
      url "{{.ARMURL}}"
      sha256 "{{.Release.ARMChecksum}}"
    end

    on_intel do
      url "{{.X86URL}}"
      sha256 "{{.Release.X86Checksum}}"
    end
  end

  def install
    bin.install "{{.Definition.Binary}}"
  end
{{- if .Definition.PostInstallBootstrap}}

  def post_install
    (etc/"{{.Definition.Name}}").mkpath
    (var/"lib/{{.Definition.Name}}").mkpath

    env_path = etc/"{{.Definition.Name}}/.env"
    unless env_path.exist?
      env_path.write <<~EOS
        LISTEN_ADDR={{.Definition.Bootstrap.ListenAddr}}
        TURSO_URL={{.Definition.Bootstrap.DatabaseURL}}
        TURSO_AUTH_TOKEN={{.Definition.Bootstrap.AuthToken}}
        MAX_CLOCK_DRIFT_SECONDS={{.Definition.Bootstrap.MaxClockDriftSeconds}}
        MAX_BODY_SIZE_BYTES={{.Definition.Bootstrap.MaxBodySizeBytes}}
      EOS
    end

    cd etc/"{{.Definition.Name}}" do
      system opt_bin/"{{.Definition.Binary}}", "init"
    end
  end
{{- end}}

  service do
    run [opt_bin/"{{.Definition.Binary}}"{{if .Definition.PostInstallBootstrap}}, "start"{{end}}]
    keep_alive true
    working_dir "#{etc}/{{.Definition.Name}}"
    log_path var/"log/{{.Definition.Name}}.log"
    error_log_path var/"log/{{.Definition.Name}}.log"
  end

  test do
    assert_predicate bin/"{{.Definition.Binary}}", :exist?
  end
end
`

// Renderer renders resolved formulas into formula file content.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a new formula renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("formula").Parse(formulaTemplate)),
	}
}

// Render produces the complete formula file content for a resolved formula.
// Output depends only on the input; rendering is deterministic.
func (r *Renderer) Render(f *entities.ResolvedFormula) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, f); err != nil {
		return "", fmt.Errorf("failed to render formula: %w", err)
	}
	return buf.String(), nil
}
