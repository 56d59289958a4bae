package kubeconfig

// Rename rewrites the names of all clusters, users and contexts in doc, and
// every context's cluster and user reference, using prefix.
//
// With exactly one cluster every name and reference becomes prefix. Otherwise
// each becomes "prefix-<original>". Calling Rename twice with the same prefix
// prefixes twice.
func Rename(doc *Document, prefix string) {
	rename := func(name string) string {
		return prefix + "-" + name
	}
	if len(doc.Clusters) == 1 {
		rename = func(string) string {
			return prefix
		}
	}

	for i := range doc.Clusters {
		doc.Clusters[i].Name = rename(doc.Clusters[i].Name)
	}
	for i := range doc.Users {
		doc.Users[i].Name = rename(doc.Users[i].Name)
	}
	for i := range doc.Contexts {
		ctx := &doc.Contexts[i]
		ctx.Context.Cluster = rename(ctx.Context.Cluster)
		ctx.Context.User = rename(ctx.Context.User)
		ctx.Name = rename(ctx.Name)
	}
}
