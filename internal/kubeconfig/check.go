package kubeconfig

import "fmt"

// ProblemKind classifies an inconsistency found by Check.
type ProblemKind string

const (
	ProblemDuplicateCluster ProblemKind = "duplicate-cluster"
	ProblemDuplicateUser    ProblemKind = "duplicate-user"
	ProblemDuplicateContext ProblemKind = "duplicate-context"
	ProblemMissingCluster   ProblemKind = "missing-cluster"
	ProblemMissingUser      ProblemKind = "missing-user"
	ProblemEmptyCluster     ProblemKind = "empty-cluster"
	ProblemEmptyUser        ProblemKind = "empty-user"
)

// Problem is a single inconsistency in a combined document.
type Problem struct {
	Kind ProblemKind
	// Name is the duplicated entry, or the context holding a dangling
	// reference.
	Name string
	// Ref is the dangling reference, empty for duplicates.
	Ref string
}

func (p Problem) String() string {
	switch p.Kind {
	case ProblemMissingCluster:
		return fmt.Sprintf("context %q references unknown cluster %q", p.Name, p.Ref)
	case ProblemMissingUser:
		return fmt.Sprintf("context %q references unknown user %q", p.Name, p.Ref)
	case ProblemEmptyCluster:
		return fmt.Sprintf("context %q has no cluster", p.Name)
	case ProblemEmptyUser:
		return fmt.Sprintf("context %q has no user", p.Name)
	default:
		return fmt.Sprintf("%s: %q is defined more than once", p.Kind, p.Name)
	}
}

// Check reports duplicate names and context references that do not resolve.
// Two source files with the same stem collapse onto the same names; Check
// surfaces that but does not repair it.
func Check(doc *Document) []Problem {
	var problems []Problem

	clusters := make(map[string]int, len(doc.Clusters))
	for _, c := range doc.Clusters {
		clusters[c.Name]++
		if clusters[c.Name] == 2 {
			problems = append(problems, Problem{Kind: ProblemDuplicateCluster, Name: c.Name})
		}
	}
	users := make(map[string]int, len(doc.Users))
	for _, u := range doc.Users {
		users[u.Name]++
		if users[u.Name] == 2 {
			problems = append(problems, Problem{Kind: ProblemDuplicateUser, Name: u.Name})
		}
	}

	contexts := make(map[string]int, len(doc.Contexts))
	for _, c := range doc.Contexts {
		contexts[c.Name]++
		if contexts[c.Name] == 2 {
			problems = append(problems, Problem{Kind: ProblemDuplicateContext, Name: c.Name})
		}
		if _, ok := clusters[c.Context.Cluster]; !ok {
			problems = append(problems, Problem{Kind: ProblemMissingCluster, Name: c.Name, Ref: c.Context.Cluster})
		}
		if _, ok := users[c.Context.User]; !ok {
			problems = append(problems, Problem{Kind: ProblemMissingUser, Name: c.Name, Ref: c.Context.User})
		}
	}
	return problems
}

// CheckSource reports contexts of a source document whose cluster or user is
// unset. Renaming turns an empty reference into a prefixed name, so this has
// to run before Rename.
func CheckSource(doc *Document) []Problem {
	var problems []Problem
	for _, c := range doc.Contexts {
		if c.Context.Cluster == "" {
			problems = append(problems, Problem{Kind: ProblemEmptyCluster, Name: c.Name})
		}
		if c.Context.User == "" {
			problems = append(problems, Problem{Kind: ProblemEmptyUser, Name: c.Name})
		}
	}
	return problems
}
