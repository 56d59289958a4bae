package config

// KcConfig is the top-level configuration structure for kc.
type KcConfig struct {
	// SourceDir holds one kubeconfig per file, e.g. ~/.kube/config.d.
	SourceDir string `yaml:"sourceDir,omitempty"`
	// Kubeconfig is the combined file written by `kc run`.
	Kubeconfig string `yaml:"kubeconfig,omitempty"`
	// InstallDir is where `kc install` copies the binary.
	InstallDir string `yaml:"installDir,omitempty"`
	// Extensions selects the files of SourceDir, e.g. [".yaml", ".yml"].
	Extensions []string `yaml:"extensions,omitempty"`
	// KeepCurrentContext carries the current-context of the existing
	// kubeconfig over to the combined one. Nil means the default (true).
	KeepCurrentContext *bool `yaml:"keepCurrentContext,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`
}

// KeepsCurrentContext reports the effective KeepCurrentContext setting.
func (c KcConfig) KeepsCurrentContext() bool {
	return c.KeepCurrentContext == nil || *c.KeepCurrentContext
}
