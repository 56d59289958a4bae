package cmd

import (
	"fmt"
	"io"
	"os"

	"kc/internal/color"
	"kc/internal/kube"
	"kc/internal/kubeconfig"
	"kc/pkg/logging"

	"github.com/spf13/cobra"
)

// runOptions are the fully resolved inputs of `kc run`.
type runOptions struct {
	sourceDir          string
	kubeconfig         string
	extensions         []string
	keepCurrentContext bool
}

func newRunCmd() *cobra.Command {
	var (
		kubeconfigPath     string
		sourceDir          string
		keepCurrentContext bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Combine the kubeconfigs of the source directory and write the result",
		Long: `Reads every kubeconfig in the source directory, renames its clusters, users
and contexts after the file name, and writes the combined kubeconfig.

If no cluster is found at all, the destination is left untouched and kc exits
with a non-zero status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions{
				sourceDir:          settings.SourceDir,
				kubeconfig:         settings.Kubeconfig,
				extensions:         settings.Extensions,
				keepCurrentContext: settings.KeepsCurrentContext(),
			}
			if kubeconfigPath != "" {
				opts.kubeconfig = kubeconfigPath
			}
			if sourceDir != "" {
				opts.sourceDir = sourceDir
			}
			if cmd.Flags().Changed("keep-current-context") {
				opts.keepCurrentContext = keepCurrentContext
			}
			return runCombine(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to save the combined config file (default ~/.kube/config)")
	cmd.Flags().StringVar(&sourceDir, "source-dir", "", "Directory holding the kubeconfig files to combine (default ~/.kube/config.d)")
	cmd.Flags().BoolVar(&keepCurrentContext, "keep-current-context", true, "Keep the current-context of the existing kubeconfig if it still exists")

	return cmd
}

func runCombine(out io.Writer, opts runOptions) error {
	var previous string
	if opts.keepCurrentContext {
		previous = previousContext(opts.kubeconfig)
	}

	res, err := kubeconfig.CombineAndWrite(kubeconfig.Options{
		SourceDir:      opts.sourceDir,
		OutputPath:     opts.kubeconfig,
		Extensions:     opts.extensions,
		CurrentContext: previous,
	})
	if err != nil {
		return err
	}

	doc := res.Document
	fmt.Fprintln(out, color.Success(fmt.Sprintf("Combined %d clusters, %d users and %d contexts from %d files into %s",
		len(doc.Clusters), len(doc.Users), len(doc.Contexts), len(res.Files), res.OutputPath)))
	if doc.CurrentContext != "" {
		fmt.Fprintln(out, color.Muted(fmt.Sprintf("current-context: %s", doc.CurrentContext)))
	}
	return nil
}

// previousContext returns the current-context of the kubeconfig about to be
// overwritten, or "" when there is none.
func previousContext(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	current, err := kube.GetCurrentKubeContext(path)
	if err != nil {
		logging.Debug("Run", "No current-context to keep from %s: %v", path, err)
		return ""
	}
	return current
}
