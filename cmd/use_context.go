package cmd

import (
	"fmt"
	"io"

	"kc/internal/color"
	"kc/internal/kube"

	"github.com/spf13/cobra"
)

func newUseContextCmd() *cobra.Command {
	var kubeconfigPath string

	cmd := &cobra.Command{
		Use:   "use-context <context-name>",
		Short: "Set the current-context of the combined kubeconfig",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settings.Kubeconfig
			if kubeconfigPath != "" {
				path = kubeconfigPath
			}
			return runUseContext(cmd.OutOrStdout(), path, args[0])
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path of the kubeconfig to update (default ~/.kube/config)")
	return cmd
}

func runUseContext(out io.Writer, path, name string) error {
	if err := kube.SwitchKubeContext(path, name); err != nil {
		return err
	}
	fmt.Fprintln(out, color.Success(fmt.Sprintf("Switched to context %q.", name)))
	return nil
}
