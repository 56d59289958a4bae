package kube

import (
	"fmt"
	"sort"

	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// ContextInfo is one context of a kubeconfig as shown by `kc contexts`.
type ContextInfo struct {
	Name      string
	Cluster   string
	User      string
	Namespace string
	Current   bool
}

// resolvePath returns path, or the kubeconfig client-go would use by default
// ($KUBECONFIG, else ~/.kube/config) when path is empty.
func resolvePath(path string) string {
	if path != "" {
		return path
	}
	return clientcmd.NewDefaultPathOptions().GetDefaultFilename()
}

// LoadKubeconfig reads the kubeconfig at path through client-go.
var LoadKubeconfig = func(path string) (*api.Config, error) {
	path = resolvePath(path)
	config, err := clientcmd.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig %s: %w", path, err)
	}
	return config, nil
}

// GetCurrentKubeContext retrieves the name of the active context of the
// kubeconfig at path.
var GetCurrentKubeContext = func(path string) (string, error) {
	config, err := LoadKubeconfig(path)
	if err != nil {
		return "", err
	}
	if config.CurrentContext == "" {
		return "", fmt.Errorf("current kubeconfig context is not set")
	}
	return config.CurrentContext, nil
}

// ListKubeContexts returns the contexts of the kubeconfig at path sorted by
// name.
var ListKubeContexts = func(path string) ([]ContextInfo, error) {
	config, err := LoadKubeconfig(path)
	if err != nil {
		return nil, err
	}
	contexts := make([]ContextInfo, 0, len(config.Contexts))
	for name, ctx := range config.Contexts {
		contexts = append(contexts, ContextInfo{
			Name:      name,
			Cluster:   ctx.Cluster,
			User:      ctx.AuthInfo,
			Namespace: ctx.Namespace,
			Current:   name == config.CurrentContext,
		})
	}
	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].Name < contexts[j].Name
	})
	return contexts, nil
}

// SwitchKubeContext changes the active context of the kubeconfig at path.
var SwitchKubeContext = func(path, contextName string) error {
	path = resolvePath(path)
	config, err := clientcmd.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	if _, exists := config.Contexts[contextName]; !exists {
		return fmt.Errorf("context '%s' does not exist in kubeconfig", contextName)
	}
	config.CurrentContext = contextName
	if err := clientcmd.WriteToFile(*config, path); err != nil {
		return fmt.Errorf("failed to write updated kubeconfig to '%s': %w", path, err)
	}
	return nil
}
