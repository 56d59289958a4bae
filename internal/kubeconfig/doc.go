// Package kubeconfig combines a directory of independent kubeconfig files into
// a single kubeconfig.
//
// Every source file is parsed into a Document, its clusters, users and
// contexts are renamed after the file's stem so that generic names such as
// "default" cannot collide, and the renamed entries are appended to one
// combined Document.
//
// # Renaming
//
// A source file holding exactly one cluster is collapsed onto the stem: the
// cluster, every user, every context and every context reference are all
// renamed to the stem itself. Any other file gets "<stem>-" prepended to each
// of those names instead.
//
//	~/.kube/config.d/prod.yaml     cluster "default"      -> "prod"
//	~/.kube/config.d/staging.yaml  clusters "a" and "b"   -> "staging-a", "staging-b"
//
// # Usage Example
//
//	res, err := kubeconfig.CombineAndWrite(kubeconfig.Options{
//	    SourceDir:  "/home/me/.kube/config.d",
//	    OutputPath: "/home/me/.kube/config",
//	})
//	if errors.Is(err, kubeconfig.ErrNoClusters) {
//	    // nothing was written
//	}
//
// # Error Handling
//
// A file that is not valid YAML fails the whole run with a *ParseError and
// nothing is written. A run that finds no clusters at all returns
// ErrNoClusters and leaves the destination untouched.
//
// Fields the package does not interpret (cluster bodies, credentials,
// extensions) are carried through verbatim.
package kubeconfig
