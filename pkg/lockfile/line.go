package lockfile

import "regexp"

// LineKind classifies a line inside the PODS section.
type LineKind int

const (
	// LineOther is any line that is neither a pod nor a dependency.
	LineOther LineKind = iota
	// LineTopLevel is a pod declaration ("  - Name (1.0):").
	LineTopLevel
	// LineDependency is a dependency of the preceding pod ("    - Name (~> 1.0)").
	LineDependency
)

func (k LineKind) String() string {
	switch k {
	case LineTopLevel:
		return "pod"
	case LineDependency:
		return "dependency"
	default:
		return "other"
	}
}

// Line is the result of classifying a single lock file line.
type Line struct {
	Kind    LineKind
	Name    string
	Version string // empty when the line has no parsable version
}

var (
	topLevelRe   = regexp.MustCompile(`^\s\s-`)
	dependencyRe = regexp.MustCompile(`^\s\s\s\s-`)

	// Group 2 is the name, group 4 the version. The leading group is greedy
	// and swallows everything up to the last "- " on the line.
	entryRe = regexp.MustCompile(`(.*-\s)([a-zA-Z0-9\-/]+)(\s\()?([~> 0-9.]+)?`)
)

// ClassifyLine determines whether s declares a top-level pod, a nested
// dependency or neither, and extracts the name and version.
// A dash line without an extractable name is reported as LineOther.
func ClassifyLine(s string) Line {
	var kind LineKind
	switch {
	case topLevelRe.MatchString(s):
		kind = LineTopLevel
	case dependencyRe.MatchString(s):
		kind = LineDependency
	default:
		return Line{Kind: LineOther}
	}

	m := entryRe.FindStringSubmatch(s)
	if m == nil {
		return Line{Kind: LineOther}
	}
	return Line{Kind: kind, Name: m[2], Version: m[4]}
}
