package entities

// FormulaDefinition describes the tap-level metadata of the generated formula.
// These values change rarely and live in formula.yml; the release-specific
// values (tag and checksums) arrive per invocation as a Release.
type FormulaDefinition struct {
	Name        string
	Description string
	Homepage    string
	License     string
	Owner       string
	Repo        string
	Binary      string

	// PostInstallBootstrap selects the template variant that provisions the
	// config/data directories, writes a default .env and runs "<binary> init"
	// after install. The canonical formula omits it.
	PostInstallBootstrap bool
	Bootstrap            BootstrapConfig
}

// BootstrapConfig holds the default environment written by the post_install
// step of the bootstrap template variant.
type BootstrapConfig struct {
	ListenAddr           string
	DatabaseURL          string
	AuthToken            string
	MaxClockDriftSeconds int
	MaxBodySizeBytes     int
}

// DefaultDefinition returns the compiled-in definition for the CloudConfig
// tap, used when no formula.yml is present.
func DefaultDefinition() *FormulaDefinition {
	return &FormulaDefinition{
		Name:        "cloudconfig",
		Description: "Secure cloud configuration sync server",
		Homepage:    "https://github.com/dickwu/CloudConfig",
		License:     "MIT",
		Owner:       "dickwu",
		Repo:        "CloudConfig",
		Binary:      "cloudconfig",
		Bootstrap: BootstrapConfig{
			ListenAddr:           "127.0.0.1:8080",
			DatabaseURL:          "#{var}/lib/cloudconfig/cloudconfig.db",
			AuthToken:            "",
			MaxClockDriftSeconds: 300,
			MaxBodySizeBytes:     1048576,
		},
	}
}
