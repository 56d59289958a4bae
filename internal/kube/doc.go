// Package kube reads and updates kubeconfig files through client-go's
// clientcmd package.
//
// It backs the commands that look at an existing kubeconfig rather than build
// one: listing contexts, switching the current context, and reading the
// current context so a merge can carry it over.
//
// Every function takes the kubeconfig path explicitly. An empty path falls
// back to client-go's default resolution ($KUBECONFIG, then ~/.kube/config).
//
// The functions are package-level variables so that command tests can replace
// them.
package kube
