package lockfile

import (
	"fmt"
	"strings"

	errs "github.com/matzehuels/podgraph/pkg/errors"
)

// StructuralError reports PODS content that breaks the section's structure:
// a dependency with no pod above it, a missing section, or a failed
// integrity check.
type StructuralError struct {
	Line   int    // 1-based line number of the offending line, 0 if not tied to one
	Text   string // offending line, if any
	Reason string

	// Set by the integrity check.
	Expected   int      // significant lines read
	Actual     int      // pods plus dependency records produced
	Duplicates []string // top-level names declared more than once
}

func (e *StructuralError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Reason)
	if e.Text != "" {
		fmt.Fprintf(&b, ": %q", e.Text)
	}
	if len(e.Duplicates) > 0 {
		fmt.Fprintf(&b, " (declared more than once: %s)", strings.Join(e.Duplicates, ", "))
	}
	return b.String()
}

// Code returns the error code for this error type.
func (e *StructuralError) Code() errs.Code { return errs.ErrCodeStructural }

// UnresolvedDependencyError reports a dependency whose name has no
// top-level pod entry to take a concrete version from.
type UnresolvedDependencyError struct {
	Pod        string // pod declaring the dependency
	Dependency string // missing pod name
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("unresolved dependency %s: required by %s but not declared in PODS", e.Dependency, e.Pod)
}

// Code returns the error code for this error type.
func (e *UnresolvedDependencyError) Code() errs.Code { return errs.ErrCodeUnresolved }
