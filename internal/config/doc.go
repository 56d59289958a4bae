// Package config provides configuration management for kc.
//
// Configuration is layered: built-in defaults first, then the user
// configuration file (~/.config/kc/config.yaml) when it exists. A file given
// with --config replaces the user file and must exist. Command-line flags are
// applied on top by the cmd package.
//
// # Defaults
//
//	sourceDir:  ~/.kube/config.d
//	kubeconfig: ~/.kube/config
//	installDir: ~/.kube
//	extensions: [".yaml"]
//	keepCurrentContext: true
//	logLevel: warn
//
// Paths in the file may start with "~/". They are resolved here, once, so the
// merge code only ever sees absolute paths.
package config
