package lockfile

// Resolve replaces every dependency's version constraint with the concrete
// version of the top-level pod of the same name.
//
// All lookups happen before any version is written, so on error the lock is
// left untouched. The first missing pod, in declaration order, is reported as
// an *UnresolvedDependencyError. Resolving an already resolved lock is a
// no-op.
func (l *Lock) Resolve() error {
	type assignment struct {
		dep     *Pod
		version string
	}

	var plan []assignment
	for _, p := range l.pods {
		for _, d := range p.Deps {
			target, ok := l.Pod(d.Name)
			if !ok {
				return &UnresolvedDependencyError{Pod: p.Name, Dependency: d.Name}
			}
			plan = append(plan, assignment{dep: d, version: target.Version})
		}
	}

	for _, a := range plan {
		a.dep.Version = a.version
	}
	return nil
}
