package lockfile

import "fmt"

// Verify checks that every significant line of the PODS section produced
// exactly one record: the number of top-level pods plus the number of
// dependency declarations must equal [Lock.Lines].
//
// A mismatch means lines were skipped (unrecognised indentation, names the
// pattern cannot extract) or a pod was declared twice, and the graph would be
// silently incomplete. Verify reports it as a *StructuralError.
func (l *Lock) Verify() error {
	actual := l.Len() + l.DependencyCount()
	if actual == l.lines {
		return nil
	}
	return &StructuralError{
		Reason: fmt.Sprintf("integrity check failed: read %d significant lines but produced %d records (%d pods, %d dependencies)",
			l.lines, actual, l.Len(), l.DependencyCount()),
		Expected:   l.lines,
		Actual:     actual,
		Duplicates: l.dups,
	}
}
