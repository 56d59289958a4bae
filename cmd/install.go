package cmd

import (
	"fmt"
	"io"

	"kc/internal/color"
	"kc/internal/install"

	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install kc to ~/.kube/kc and create ~/.kube/config.d",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := install.Options{
				Dir:       settings.InstallDir,
				SourceDir: settings.SourceDir,
			}
			if dir != "" {
				opts.Dir = dir
			}
			return runInstall(cmd.OutOrStdout(), opts, settings.Kubeconfig)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to install kc into (default ~/.kube)")
	return cmd
}

func runInstall(out io.Writer, opts install.Options, kubeconfigPath string) error {
	res, err := install.Install(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, color.Success(fmt.Sprintf("kc installed to %s.", res.BinaryPath)))
	fmt.Fprintf(out, `Use:

  * Now place all your config files in %s. Make sure they have a %s file extension.
  * Back up your existing %s
  * '%s run' to combine them into %s
`, res.SourceDir, extensionHint(), kubeconfigPath, res.BinaryPath, kubeconfigPath)
	return nil
}

func extensionHint() string {
	if len(settings.Extensions) == 0 {
		return ".yaml"
	}
	return settings.Extensions[0]
}
