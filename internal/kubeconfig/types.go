package kubeconfig

const (
	// DefaultAPIVersion is written on every combined document.
	DefaultAPIVersion = "v1"
	// DefaultKind is written on every combined document.
	DefaultKind = "Config"
)

// Document is one kubeconfig file. Lists keep the order they had on disk.
type Document struct {
	APIVersion     string                 `yaml:"apiVersion"`
	Kind           string                 `yaml:"kind"`
	CurrentContext string                 `yaml:"current-context,omitempty"`
	Clusters       []NamedCluster         `yaml:"clusters"`
	Contexts       []NamedContext         `yaml:"contexts"`
	Users          []NamedUser            `yaml:"users"`
	Preferences    map[string]interface{} `yaml:"preferences"`

	// Extra holds top-level keys not listed above.
	Extra map[string]interface{} `yaml:",inline"`
}

// NamedCluster is an entry of the clusters list. Everything but the name is
// opaque.
type NamedCluster struct {
	Name  string                 `yaml:"name"`
	Extra map[string]interface{} `yaml:",inline"`
}

// NamedUser is an entry of the users list. Everything but the name is opaque.
type NamedUser struct {
	Name  string                 `yaml:"name"`
	Extra map[string]interface{} `yaml:",inline"`
}

// NamedContext is an entry of the contexts list.
type NamedContext struct {
	Name    string                 `yaml:"name"`
	Context ContextRef             `yaml:"context"`
	Extra   map[string]interface{} `yaml:",inline"`
}

// ContextRef points at a cluster and a user by name.
type ContextRef struct {
	Cluster string                 `yaml:"cluster"`
	User    string                 `yaml:"user"`
	Extra   map[string]interface{} `yaml:",inline"`
}

// NewDocument returns an empty combined document with the fixed header and
// empty preferences.
func NewDocument() *Document {
	return &Document{
		APIVersion:  DefaultAPIVersion,
		Kind:        DefaultKind,
		Clusters:    []NamedCluster{},
		Contexts:    []NamedContext{},
		Users:       []NamedUser{},
		Preferences: map[string]interface{}{},
	}
}

// HasContext reports whether a context with the given name exists.
func (d *Document) HasContext(name string) bool {
	for _, c := range d.Contexts {
		if c.Name == name {
			return true
		}
	}
	return false
}

// append adds the entries of src to d without merging or deduplicating.
func (d *Document) append(src *Document) {
	d.Clusters = append(d.Clusters, src.Clusters...)
	d.Contexts = append(d.Contexts, src.Contexts...)
	d.Users = append(d.Users, src.Users...)
}
