// Package lockfile reads the PODS section of a CocoaPods Podfile.lock.
//
// # Format
//
// Only the section that starts with a "PODS:" line is read. Top-level pods
// are indented by two spaces, their dependencies by four:
//
//	PODS:
//	  - AFNetworking (2.5.4):
//	    - AFNetworking/NSURLConnection (= 2.5.4)
//	    - AFNetworking/Serialization (~> 2.5)
//	  - Masonry (0.6.1)
//
//	DEPENDENCIES:
//	  ...
//
// The first empty line ends the section. The DEPENDENCIES section is not
// consistent about listing every dependency and is never read.
//
// Names are runs of letters, digits, hyphens and slashes. A version is the
// parenthesised run of digits, dots, tildes, '>' and spaces that follows the
// name; anything else inside the parentheses (for example "= 2.5.4") leaves
// the version empty.
//
// # Usage
//
//	lock, err := lockfile.ParseFile("Podfile.lock")
//	if err != nil {
//	    return err
//	}
//	if err := lock.Verify(); err != nil {
//	    return err // *StructuralError
//	}
//	if err := lock.Resolve(); err != nil {
//	    return err // *UnresolvedDependencyError
//	}
//	g, err := lock.Graph()
//
// # Single version assumption
//
// A Podfile.lock installs exactly one version of each pod, so every
// dependency is resolved to the version of the top-level pod with the same
// name. A pod declared twice at the top level keeps its first position but
// the last declaration's record; [Lock.Duplicates] lists such names and
// [Lock.Verify] reports them.
package lockfile
