package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"kc/internal/kubeconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prodKubeconfig = `apiVersion: v1
kind: Config
clusters:
- name: default
  cluster:
    server: https://prod.example.com:6443
users:
- name: admin
  user:
    token: secret
contexts:
- name: default
  context:
    cluster: default
    user: admin
preferences: {}
`

func sourceDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
	return dir
}

func TestRunCombine(t *testing.T) {
	src := sourceDir(t, map[string]string{"prod.yaml": prodKubeconfig, "dev.yaml": prodKubeconfig})
	out := filepath.Join(t.TempDir(), "config")

	var buf bytes.Buffer
	err := runCombine(&buf, runOptions{sourceDir: src, kubeconfig: out, keepCurrentContext: true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Combined 2 clusters, 2 users and 2 contexts from 2 files")

	doc, err := kubeconfig.Load(out)
	require.NoError(t, err)
	assert.Equal(t, "dev", doc.Clusters[0].Name)
	assert.Equal(t, "prod", doc.Clusters[1].Name)
	assert.Empty(t, doc.CurrentContext)
}

func TestRunCombine_KeepsCurrentContext(t *testing.T) {
	src := sourceDir(t, map[string]string{"prod.yaml": prodKubeconfig, "dev.yaml": prodKubeconfig})
	out := filepath.Join(t.TempDir(), "config")

	// First run produces the kubeconfig, then the user picks a context.
	require.NoError(t, runCombine(&bytes.Buffer{}, runOptions{sourceDir: src, kubeconfig: out}))
	require.NoError(t, runUseContext(&bytes.Buffer{}, out, "prod"))

	var buf bytes.Buffer
	require.NoError(t, runCombine(&buf, runOptions{sourceDir: src, kubeconfig: out, keepCurrentContext: true}))
	assert.Contains(t, buf.String(), "current-context: prod")

	doc, err := kubeconfig.Load(out)
	require.NoError(t, err)
	assert.Equal(t, "prod", doc.CurrentContext)

	require.NoError(t, runCombine(&bytes.Buffer{}, runOptions{sourceDir: src, kubeconfig: out, keepCurrentContext: false}))
	doc, err = kubeconfig.Load(out)
	require.NoError(t, err)
	assert.Empty(t, doc.CurrentContext)
}

func TestRunCombine_NoClusters(t *testing.T) {
	src := sourceDir(t, map[string]string{"empty.yaml": "apiVersion: v1\nkind: Config\n"})
	out := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(out, []byte("keep me\n"), 0600))

	var buf bytes.Buffer
	err := runCombine(&buf, runOptions{sourceDir: src, kubeconfig: out})
	require.ErrorIs(t, err, kubeconfig.ErrNoClusters)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, err.Error(), "not overwriting "+out)
	assert.Empty(t, buf.String(), "the error is the only report")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(data))
}

func TestRunCombine_ParseError(t *testing.T) {
	src := sourceDir(t, map[string]string{"prod.yaml": prodKubeconfig, "broken.yaml": "clusters: [\n"})
	out := filepath.Join(t.TempDir(), "config")

	err := runCombine(&bytes.Buffer{}, runOptions{sourceDir: src, kubeconfig: out})
	require.Error(t, err)
	assert.True(t, kubeconfig.IsParseError(err))
	assert.Equal(t, 1, ExitCode(err))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
