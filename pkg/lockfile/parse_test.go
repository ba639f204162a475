package lockfile

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	errs "github.com/matzehuels/podgraph/pkg/errors"
)

func podNames(l *Lock) []string {
	names := make([]string, 0, l.Len())
	for _, p := range l.Pods() {
		names = append(names, p.Name)
	}
	return names
}

func TestParse_Basic(t *testing.T) {
	in := "PODS:\n  - A (1.0):\n    - B (~> 0.5)\n  - B (2.0)\n"

	lock, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := podNames(lock); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("pods = %v, want [A B]", got)
	}
	if got := lock.Lines(); got != 3 {
		t.Errorf("Lines() = %d, want 3", got)
	}

	a, ok := lock.Pod("A")
	if !ok {
		t.Fatal("pod A not found")
	}
	if a.Version != "1.0" {
		t.Errorf("A.Version = %q, want 1.0", a.Version)
	}
	if len(a.Deps) != 1 || a.Deps[0].Name != "B" || a.Deps[0].Version != "~> 0.5" {
		t.Errorf("A.Deps = %+v, want [B ~> 0.5]", a.Deps)
	}
	if _, ok := lock.Pod("C"); ok {
		t.Error("Pod(C) should not exist")
	}
}

func TestParse_Testdata(t *testing.T) {
	lock, err := ParseFile(filepath.Join("testdata", "Podfile.lock"))
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if got := lock.Len(); got != 9 {
		t.Errorf("Len() = %d, want 9", got)
	}
	if got := lock.DependencyCount(); got != 12 {
		t.Errorf("DependencyCount() = %d, want 12", got)
	}
	if got := lock.Lines(); got != 21 {
		t.Errorf("Lines() = %d, want 21", got)
	}
	if err := lock.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}

	// DEPENDENCIES must not leak into the pod map.
	if p, _ := lock.Pod("AFNetworking"); p.Version != "2.5.4" {
		t.Errorf("AFNetworking version = %q, want 2.5.4", p.Version)
	}
}

func TestParse_SkipsPreamble(t *testing.T) {
	in := "# generated\nSOMETHING:\n  - X (9.9)\nPODS:\n  - A (1.0)\n"

	lock, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := podNames(lock); !slices.Equal(got, []string{"A"}) {
		t.Errorf("pods = %v, want [A]", got)
	}
	if got := lock.Lines(); got != 1 {
		t.Errorf("Lines() = %d, want 1", got)
	}
}

func TestParse_StopsAtBlankLine(t *testing.T) {
	in := "PODS:\n  - A (1.0)\n\n  - B (2.0)\n"

	lock, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := podNames(lock); !slices.Equal(got, []string{"A"}) {
		t.Errorf("pods = %v, want [A]", got)
	}
}

func TestParse_WhitespaceOnlyLine(t *testing.T) {
	in := "PODS:\n  - A (1.0):\n  \n    - B (1.0)\n  - B (1.0)\n"

	lock, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := podNames(lock); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("pods = %v, want [A B]", got)
	}
	if got := lock.Lines(); got != 4 {
		t.Errorf("Lines() = %d, want 4", got)
	}

	var se *StructuralError
	if err := lock.Verify(); !errors.As(err, &se) {
		t.Errorf("Verify() = %v, want *StructuralError", err)
	}
}

func TestParse_UnreadablePodLine(t *testing.T) {
	in := "PODS:\n  - A (1.0):\n    - B\n  - \"Weird Pod (2.0)\":\n    - C\n  - B\n  - C\n"

	_, err := Parse(strings.NewReader(in))

	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("Parse() error = %v, want *StructuralError", err)
	}
	if se.Line != 5 {
		t.Errorf("Line = %d, want 5", se.Line)
	}
	if !strings.Contains(se.Error(), "C") {
		t.Errorf("error %q should quote the offending line", se.Error())
	}
}

func TestParse_UnreadablePodLineWithoutDeps(t *testing.T) {
	in := "PODS:\n  - A (1.0):\n    - B\n  - \"Weird Pod (2.0)\"\n  - B\n"

	lock, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	a, _ := lock.Pod("A")
	if len(a.Deps) != 1 || a.Deps[0].Name != "B" {
		t.Errorf("A.Deps = %+v, want only B", a.Deps)
	}
	if got := lock.Lines(); got != 4 {
		t.Errorf("Lines() = %d, want 4", got)
	}
}

func TestParse_CRLF(t *testing.T) {
	in := "PODS:\r\n  - A (1.0):\r\n    - B (~> 2.0)\r\n  - B (2.0)\r\n\r\n"

	lock, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := lock.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}
	if b, _ := lock.Pod("B"); b.Version != "2.0" {
		t.Errorf("B.Version = %q, want 2.0", b.Version)
	}
}

func TestParse_DependencyBeforePod(t *testing.T) {
	in := "PODS:\n    - Orphan (1.0)\n  - A (1.0)\n"

	_, err := Parse(strings.NewReader(in))

	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("Parse() error = %v, want *StructuralError", err)
	}
	if se.Line != 2 {
		t.Errorf("Line = %d, want 2", se.Line)
	}
	if !strings.Contains(se.Error(), "Orphan") {
		t.Errorf("error %q should quote the offending line", se.Error())
	}
	if !errs.Is(err, errs.ErrCodeStructural) {
		t.Error("error should carry STRUCTURAL_ERROR code")
	}
}

func TestParse_NoSection(t *testing.T) {
	_, err := Parse(strings.NewReader("DEPENDENCIES:\n  - A\n"))

	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("Parse() error = %v, want *StructuralError", err)
	}
}

func TestParse_EmptySection(t *testing.T) {
	lock, err := Parse(strings.NewReader("PODS:\n\nDEPENDENCIES:\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if lock.Len() != 0 || lock.Lines() != 0 {
		t.Errorf("Len() = %d, Lines() = %d, want 0, 0", lock.Len(), lock.Lines())
	}
	if err := lock.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestParse_SkipsOtherLines(t *testing.T) {
	in := "PODS:\n  - A (1.0):\n      - TooDeep (1.0)\n    - B (1.0)\n  - B (1.0)\n"

	lock, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	a, _ := lock.Pod("A")
	if len(a.Deps) != 1 || a.Deps[0].Name != "B" {
		t.Errorf("A.Deps = %+v, want only B", a.Deps)
	}
	if got := lock.Lines(); got != 4 {
		t.Errorf("Lines() = %d, want 4", got)
	}
}

func TestParse_DuplicatePod(t *testing.T) {
	in := "PODS:\n  - A (1.0)\n  - B (1.0)\n  - A (2.0)\n"

	lock, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := podNames(lock); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("pods = %v, want [A B]", got)
	}
	if a, _ := lock.Pod("A"); a.Version != "2.0" {
		t.Errorf("A.Version = %q, want last declaration 2.0", a.Version)
	}
	if got := lock.Duplicates(); !slices.Equal(got, []string{"A"}) {
		t.Errorf("Duplicates() = %v, want [A]", got)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.lock"))
	if err == nil {
		t.Fatal("ParseFile() should fail for a missing file")
	}
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("code = %q, want %q", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}
