package cmd

import (
	"fmt"
	"io"

	"kc/internal/color"
	"kc/internal/kube"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newContextsCmd() *cobra.Command {
	var kubeconfigPath string

	cmd := &cobra.Command{
		Use:     "contexts",
		Aliases: []string{"get-contexts"},
		Short:   "List the contexts of the combined kubeconfig",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settings.Kubeconfig
			if kubeconfigPath != "" {
				path = kubeconfigPath
			}
			return runContexts(cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path of the kubeconfig to read (default ~/.kube/config)")
	return cmd
}

func runContexts(out io.Writer, path string) error {
	contexts, err := kube.ListKubeContexts(path)
	if err != nil {
		return err
	}
	if len(contexts) == 0 {
		fmt.Fprintln(out, color.Muted(fmt.Sprintf("No contexts in %s", path)))
		return nil
	}

	header := []string{"CURRENT", "NAME", "CLUSTER", "USER", "NAMESPACE"}
	rows := make([][]string, 0, len(contexts))
	for _, c := range contexts {
		marker := ""
		if c.Current {
			marker = "*"
		}
		rows = append(rows, []string{marker, c.Name, c.Cluster, c.User, c.Namespace})
	}

	widths := columnWidths(header, rows)
	fmt.Fprintln(out, color.HeaderStyle.Render(formatRow(header, widths)))
	for i, row := range rows {
		line := formatRow(row, widths)
		if contexts[i].Current {
			line = color.CurrentStyle.Render(line)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// columnWidths returns the display width of the widest cell of each column.
// Context names may contain wide characters, so widths are measured in cells.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	line := ""
	for i, cell := range cells {
		if i == len(cells)-1 {
			line += cell
			break
		}
		line += runewidth.FillRight(cell, widths[i]) + "   "
	}
	return line
}
