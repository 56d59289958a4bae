package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/kc"
	configFileName = "config.yaml"
)

// LoadConfig loads the kc configuration by layering the user config file over
// the defaults. An explicit path replaces the user config file and must exist.
func LoadConfig(explicitPath string) (KcConfig, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return KcConfig{}, fmt.Errorf("could not determine home directory: %w", err)
	}
	config := GetDefaultConfig(homeDir)

	path := explicitPath
	if path == "" {
		path = filepath.Join(homeDir, userConfigDir, configFileName)
	}

	overlay, err := loadConfigFromFile(path)
	if err != nil {
		if explicitPath == "" && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return KcConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	overlay = expandHome(overlay, homeDir)
	return mergeConfigs(config, overlay), nil
}

// loadConfigFromFile loads a KcConfig from a YAML file.
func loadConfigFromFile(filePath string) (KcConfig, error) {
	var config KcConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return KcConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return KcConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Set fields of the
// overlay win.
func mergeConfigs(base, overlay KcConfig) KcConfig {
	merged := base
	if overlay.SourceDir != "" {
		merged.SourceDir = overlay.SourceDir
	}
	if overlay.Kubeconfig != "" {
		merged.Kubeconfig = overlay.Kubeconfig
	}
	if overlay.InstallDir != "" {
		merged.InstallDir = overlay.InstallDir
	}
	if len(overlay.Extensions) > 0 {
		merged.Extensions = normalizeExtensions(overlay.Extensions)
	}
	if overlay.KeepCurrentContext != nil {
		merged.KeepCurrentContext = overlay.KeepCurrentContext
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	return merged
}

// normalizeExtensions makes sure every extension starts with a dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// ExpandPath resolves a leading "~/" against homeDir.
func ExpandPath(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func expandHome(c KcConfig, homeDir string) KcConfig {
	c.SourceDir = ExpandPath(c.SourceDir, homeDir)
	c.Kubeconfig = ExpandPath(c.Kubeconfig, homeDir)
	c.InstallDir = ExpandPath(c.InstallDir, homeDir)
	return c
}

// GetUserConfigPath returns the path of the user configuration file.
func GetUserConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}
