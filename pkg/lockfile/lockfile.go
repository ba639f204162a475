package lockfile

import (
	"fmt"
	"io"
)

// Pod is a pod declaration or one of its dependency declarations.
//
// For a top-level pod, Version is the installed version. For a dependency,
// Version starts out as the declared constraint (e.g. "~> 1.2") and is
// replaced by the concrete version of the matching top-level pod when the
// lock is resolved. An empty Version means none was declared.
type Pod struct {
	Name    string
	Version string
	Deps    []*Pod
}

// Label returns "name version", or just the name if no version is known.
func (p *Pod) Label() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + " " + p.Version
}

// Lock is the parsed PODS section of a Podfile.lock.
// Top-level pods keep their source declaration order.
type Lock struct {
	pods  []*Pod
	index map[string]int
	lines int
	dups  []string
}

func newLock() *Lock {
	return &Lock{index: make(map[string]int)}
}

// add inserts a top-level pod. A repeated name replaces the earlier record
// in place, so the first declaration position wins and the last record wins.
func (l *Lock) add(p *Pod) {
	if i, ok := l.index[p.Name]; ok {
		l.pods[i] = p
		l.dups = append(l.dups, p.Name)
		return
	}
	l.index[p.Name] = len(l.pods)
	l.pods = append(l.pods, p)
}

// Pods returns the top-level pods in declaration order.
// The returned pods are the lock's own records.
func (l *Lock) Pods() []*Pod { return l.pods }

// Pod returns the top-level pod with the given name.
func (l *Lock) Pod(name string) (*Pod, bool) {
	i, ok := l.index[name]
	if !ok {
		return nil, false
	}
	return l.pods[i], true
}

// Len returns the number of distinct top-level pods.
func (l *Lock) Len() int { return len(l.pods) }

// DependencyCount returns the number of dependency declarations across all pods.
func (l *Lock) DependencyCount() int {
	n := 0
	for _, p := range l.pods {
		n += len(p.Deps)
	}
	return n
}

// Lines returns the number of significant (non-empty) lines read from the
// PODS section, excluding the header.
func (l *Lock) Lines() int { return l.lines }

// Duplicates returns top-level names that were declared more than once,
// once per repeated declaration.
func (l *Lock) Duplicates() []string { return l.dups }

// Dump writes one "name,version,depcount" line per pod followed by
// "...dep,version" lines for its dependencies.
func (l *Lock) Dump(w io.Writer) error {
	for _, p := range l.pods {
		if _, err := fmt.Fprintf(w, "%s,%s,%d\n", p.Name, p.Version, len(p.Deps)); err != nil {
			return err
		}
		for _, d := range p.Deps {
			if _, err := fmt.Fprintf(w, "...%s,%s\n", d.Name, d.Version); err != nil {
				return err
			}
		}
	}
	return nil
}
