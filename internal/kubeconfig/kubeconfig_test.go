package kubeconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleClusterConfig = `apiVersion: v1
kind: Config
current-context: default
clusters:
- name: default
  cluster:
    server: https://prod.example.com:6443
    certificate-authority-data: Q0EK
users:
- name: admin
  user:
    token: secret
contexts:
- name: default
  context:
    cluster: default
    user: admin
    namespace: kube-system
preferences: {}
`

const multiClusterConfig = `apiVersion: v1
kind: Config
clusters:
- name: a
  cluster:
    server: https://a.example.com
- name: b
  cluster:
    server: https://b.example.com
users:
- name: a-admin
  user:
    token: t1
- name: b-admin
  user:
    token: t2
contexts:
- name: ctx-a
  context:
    cluster: a
    user: a-admin
- name: ctx-b
  context:
    cluster: b
    user: b-admin
preferences: {}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func clusterNames(doc *Document) []string {
	names := []string{}
	for _, c := range doc.Clusters {
		names = append(names, c.Name)
	}
	return names
}

func TestRename_SingleCluster(t *testing.T) {
	doc, err := Parse([]byte(singleClusterConfig))
	require.NoError(t, err)

	Rename(doc, "prod")

	require.Len(t, doc.Clusters, 1)
	require.Len(t, doc.Users, 1)
	require.Len(t, doc.Contexts, 1)
	assert.Equal(t, "prod", doc.Clusters[0].Name)
	assert.Equal(t, "prod", doc.Users[0].Name)
	assert.Equal(t, "prod", doc.Contexts[0].Name)
	assert.Equal(t, "prod", doc.Contexts[0].Context.Cluster)
	assert.Equal(t, "prod", doc.Contexts[0].Context.User)

	// Opaque fields survive untouched.
	assert.Equal(t, "kube-system", doc.Contexts[0].Context.Extra["namespace"])
	body, ok := doc.Clusters[0].Extra["cluster"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://prod.example.com:6443", body["server"])
}

func TestRename_MultipleClusters(t *testing.T) {
	doc, err := Parse([]byte(multiClusterConfig))
	require.NoError(t, err)

	Rename(doc, "staging")

	assert.Equal(t, []string{"staging-a", "staging-b"}, clusterNames(doc))
	assert.Equal(t, "staging-a-admin", doc.Users[0].Name)
	assert.Equal(t, "staging-b-admin", doc.Users[1].Name)
	assert.Equal(t, "staging-ctx-a", doc.Contexts[0].Name)
	assert.Equal(t, "staging-a", doc.Contexts[0].Context.Cluster)
	assert.Equal(t, "staging-a-admin", doc.Contexts[0].Context.User)
	assert.Equal(t, "staging-b", doc.Contexts[1].Context.Cluster)
	assert.Empty(t, Check(doc))
}

func TestRename_NoClusters(t *testing.T) {
	doc := &Document{
		Users:    []NamedUser{{Name: "admin"}},
		Contexts: []NamedContext{{Name: "ctx", Context: ContextRef{Cluster: "gone", User: "admin"}}},
	}

	Rename(doc, "orphan")

	assert.Equal(t, "orphan-admin", doc.Users[0].Name)
	assert.Equal(t, "orphan-ctx", doc.Contexts[0].Name)
	assert.Equal(t, "orphan-gone", doc.Contexts[0].Context.Cluster)
}

func TestRename_AppliedTwicePrefixesTwice(t *testing.T) {
	doc, err := Parse([]byte(multiClusterConfig))
	require.NoError(t, err)

	Rename(doc, "x")
	Rename(doc, "x")

	assert.Equal(t, []string{"x-x-a", "x-x-b"}, clusterNames(doc))
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.yaml", "clusters: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsParseError(err))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.Path)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoad_WrongShape(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.yaml", "- just\n- a list\n")

	_, err := Load(path)
	assert.True(t, IsParseError(err))
}

func TestLoad_MultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "two.yaml", singleClusterConfig+"---\n"+multiClusterConfig)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.ErrorIs(t, err, ErrMultipleDocuments)
}

func TestCombine_MultipleDocumentsFailsWholeRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "two.yaml", singleClusterConfig+"---\n"+multiClusterConfig)
	out := filepath.Join(t.TempDir(), "config")

	_, err := CombineAndWrite(Options{SourceDir: dir, OutputPath: out})
	assert.True(t, IsParseError(err))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "comments.yaml", "# nothing here yet\n")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Clusters)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.False(t, IsParseError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Clusters)
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "prod.yaml", singleClusterConfig)

	original, err := Load(src)
	require.NoError(t, err)

	dst := filepath.Join(dir, "out", "config")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0700))
	require.NoError(t, Write(original, dst))

	reloaded, err := Load(dst)
	require.NoError(t, err)
	assert.Equal(t, original, reloaded)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", singleClusterConfig)
	writeFile(t, dir, "a.yaml", singleClusterConfig)
	writeFile(t, dir, "c.yml", singleClusterConfig)
	writeFile(t, dir, "notes.txt", "ignore me")
	writeFile(t, dir, ".yaml", singleClusterConfig)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.yaml"), 0700))

	files, err := SourceFiles(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")}, files)

	files, err = SourceFiles(dir, []string{".yaml", ".yml"})
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestSourceFiles_MissingDir(t *testing.T) {
	files, err := SourceFiles(filepath.Join(t.TempDir(), "missing"), nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "prod", Stem("/home/me/.kube/config.d/prod.yaml"))
	assert.Equal(t, "eu.prod", Stem("eu.prod.yaml"))
	assert.Equal(t, "plain", Stem("plain"))
}

func TestCombine_OneClusterPerFile(t *testing.T) {
	dir := t.TempDir()
	const n = 4
	for i := 0; i < n; i++ {
		writeFile(t, dir, fmt.Sprintf("cluster%d.yaml", i), singleClusterConfig)
	}

	doc, err := Combine(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"cluster0", "cluster1", "cluster2", "cluster3"}, clusterNames(doc))
	assert.Len(t, doc.Users, n)
	assert.Len(t, doc.Contexts, n)
	assert.Empty(t, Check(doc))
}

func TestCombine_SameClusterNameInTwoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prod.yaml", singleClusterConfig)
	writeFile(t, dir, "dev.yaml", singleClusterConfig)

	doc, err := Combine(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "prod"}, clusterNames(doc))
	assert.Empty(t, Check(doc))
}

func TestCombine_MixedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prod.yaml", singleClusterConfig)
	writeFile(t, dir, "staging.yaml", multiClusterConfig)

	doc, err := Combine(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIVersion, doc.APIVersion)
	assert.Equal(t, DefaultKind, doc.Kind)
	assert.Empty(t, doc.CurrentContext)
	assert.NotNil(t, doc.Preferences)
	assert.Empty(t, doc.Preferences)
	assert.Equal(t, []string{"prod", "staging-a", "staging-b"}, clusterNames(doc))
	assert.Len(t, doc.Contexts, 3)
	assert.Len(t, doc.Users, 3)
}

func TestCombine_NoFiles(t *testing.T) {
	doc, err := Combine(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, doc.Clusters)
	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Contexts)
}

func TestCombine_ParseErrorFailsWholeRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", singleClusterConfig)
	writeFile(t, dir, "b.yaml", "clusters: {{{\n")

	doc, err := Combine(dir)
	assert.Nil(t, doc)
	assert.True(t, IsParseError(err))
}

func TestCombineAndWrite(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "prod.yaml", singleClusterConfig)
	writeFile(t, src, "staging.yaml", multiClusterConfig)
	out := filepath.Join(t.TempDir(), "config")

	res, err := CombineAndWrite(Options{SourceDir: src, OutputPath: out, CurrentContext: "staging-ctx-b"})
	require.NoError(t, err)
	assert.Len(t, res.Files, 2)
	assert.Empty(t, res.Problems)
	assert.Equal(t, out, res.OutputPath)

	written, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "staging-a", "staging-b"}, clusterNames(written))
	assert.Equal(t, "staging-ctx-b", written.CurrentContext)
	assert.Empty(t, written.Preferences)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "preferences: {}")
}

func TestCombineAndWrite_UnknownCurrentContextIsDropped(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "prod.yaml", singleClusterConfig)
	out := filepath.Join(t.TempDir(), "config")

	res, err := CombineAndWrite(Options{SourceDir: src, OutputPath: out, CurrentContext: "default"})
	require.NoError(t, err)
	assert.Empty(t, res.Document.CurrentContext)
}

func TestCombineAndWrite_NoClustersDoesNotWrite(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "empty.yaml", "apiVersion: v1\nkind: Config\n")
	out := filepath.Join(t.TempDir(), "config")
	writeFile(t, filepath.Dir(out), "config", "existing: true\n")

	res, err := CombineAndWrite(Options{SourceDir: src, OutputPath: out})
	require.ErrorIs(t, err, ErrNoClusters)
	assert.False(t, IsParseError(err))
	require.NotNil(t, res)
	assert.Len(t, res.Files, 1)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(raw))
}

func TestCombineAndWrite_MissingSourceDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "config")

	_, err := CombineAndWrite(Options{SourceDir: filepath.Join(t.TempDir(), "config.d"), OutputPath: out})
	require.ErrorIs(t, err, ErrNoClusters)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCombineAndWrite_ParseErrorDoesNotWrite(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "bad.yaml", "users: [\n")
	out := filepath.Join(t.TempDir(), "config")

	_, err := CombineAndWrite(Options{SourceDir: src, OutputPath: out})
	require.True(t, IsParseError(err))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCombineAndWrite_SameStemCollisionIsReported(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "prod.yaml", singleClusterConfig)
	writeFile(t, src, "prod.yml", singleClusterConfig)
	out := filepath.Join(t.TempDir(), "config")

	res, err := CombineAndWrite(Options{SourceDir: src, OutputPath: out, Extensions: []string{".yaml", ".yml"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "prod"}, clusterNames(res.Document))
	assert.Contains(t, res.Problems, Problem{Kind: ProblemDuplicateCluster, Name: "prod"})
}
