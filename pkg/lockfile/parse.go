package lockfile

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	errs "github.com/matzehuels/podgraph/pkg/errors"
)

// SectionHeader is the line that opens the pod list.
const SectionHeader = "PODS:"

const maxLineSize = 1 << 20

type parseState int

const (
	awaitingSection parseState = iota
	inTopLevel
	inDependency
)

// parser is the line-driven state machine behind Parse. current is the pod
// that dependency lines attach to. It is nil until the first pod line and
// after a pod line whose name cannot be read.
type parser struct {
	state   parseState
	current *Pod
	lock    *Lock
	lineNo  int
	found   bool
}

// Parse reads the PODS section from r.
//
// Lines before the "PODS:" header are ignored, and reading stops at the first
// empty line after it. A line holding only spaces does not end the section.
// Lines that are neither pods nor dependencies, whitespace-only lines
// included, are counted but otherwise skipped; [Lock.Verify] detects them.
//
// Parse returns a *StructuralError if r has no PODS section or if a
// dependency appears before any pod or right after an unreadable pod line.
func Parse(r io.Reader) (*Lock, error) {
	p := &parser{lock: newLock()}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		p.lineNo++
		done, err := p.step(sc.Text())
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "read lock file at line %d", p.lineNo+1)
	}
	if !p.found {
		return nil, &StructuralError{Reason: "no " + SectionHeader + " section"}
	}
	return p.lock, nil
}

// step feeds one line to the state machine and reports whether the section
// has ended.
func (p *parser) step(text string) (bool, error) {
	if p.state == awaitingSection {
		if strings.TrimSpace(text) == SectionHeader {
			p.found = true
			p.state = inTopLevel
		}
		return false, nil
	}

	if strings.TrimRight(text, "\r") == "" {
		p.current = nil
		return true, nil
	}
	p.lock.lines++

	line := ClassifyLine(text)
	switch line.Kind {
	case LineTopLevel:
		p.current = &Pod{Name: line.Name, Version: line.Version}
		p.lock.add(p.current)
		p.state = inTopLevel
	case LineDependency:
		if p.current == nil {
			return false, &StructuralError{
				Line:   p.lineNo,
				Text:   text,
				Reason: "dependency has no readable pod above it",
			}
		}
		p.current.Deps = append(p.current.Deps, &Pod{Name: line.Name, Version: line.Version})
		p.state = inDependency
	case LineOther:
		// A pod line without a readable name still closes the previous pod.
		if topLevelRe.MatchString(text) {
			p.current = nil
			p.state = inTopLevel
		}
	}
	return false, nil
}

// ParseFile opens the lock file at path and parses it with [Parse].
// The file is closed before ParseFile returns, including on error.
func ParseFile(path string) (*Lock, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "lock file not found")
		}
		return nil, errs.Wrap(errs.ErrCodeIO, err, "open lock file")
	}
	defer f.Close()
	return Parse(f)
}
