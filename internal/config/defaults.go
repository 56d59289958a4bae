package config

import "path/filepath"

const (
	kubeDir          = ".kube"
	sourceDirName    = "config.d"
	kubeconfigName   = "config"
	defaultLogLevel  = "warn"
	defaultExtension = ".yaml"
)

// GetDefaultConfig returns the built-in configuration rooted at homeDir:
// sources in ~/.kube/config.d, output to ~/.kube/config, install to ~/.kube.
func GetDefaultConfig(homeDir string) KcConfig {
	return KcConfig{
		SourceDir:  filepath.Join(homeDir, kubeDir, sourceDirName),
		Kubeconfig: filepath.Join(homeDir, kubeDir, kubeconfigName),
		InstallDir: filepath.Join(homeDir, kubeDir),
		Extensions: []string{defaultExtension},
		LogLevel:   defaultLogLevel,
	}
}
