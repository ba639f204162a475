package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/podgraph/pkg/errors"
)

func waitBuild(t *testing.T, builds <-chan struct{}) {
	t.Helper()
	select {
	case <-builds:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a rebuild")
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	lock := writeFile(t, dir, "Podfile.lock", sampleLock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	builds := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, lock, log.New(io.Discard), func() error {
			builds <- struct{}{}
			return nil
		})
	}()

	waitBuild(t, builds) // initial build

	// Rewriting identical content must not trigger a rebuild.
	if err := os.WriteFile(lock, []byte(sampleLock), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(4 * watchDebounce)
	select {
	case <-builds:
		t.Error("unchanged content triggered a rebuild")
	default:
	}

	if err := os.WriteFile(lock, []byte(sampleLock+"\nCOCOAPODS: 1.16.2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitBuild(t, builds)

	// Other files in the directory are ignored.
	writeFile(t, dir, "Podfile", "platform :ios, '15.0'\n")
	time.Sleep(4 * watchDebounce)
	select {
	case <-builds:
		t.Error("unrelated file triggered a rebuild")
	default:
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("watch() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

func TestWatch_BuildErrorKeepsWatching(t *testing.T) {
	lock := writeFile(t, t.TempDir(), "Podfile.lock", sampleLock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	builds := make(chan struct{}, 16)
	go func() {
		_ = watch(ctx, lock, log.New(io.Discard), func() error {
			builds <- struct{}{}
			return errors.New("broken")
		})
	}()

	waitBuild(t, builds)
	if err := os.WriteFile(lock, []byte("PODS:\n  - A (2.0)\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitBuild(t, builds)
}

func TestWatch_MissingDir(t *testing.T) {
	err := watch(context.Background(), filepath.Join(t.TempDir(), "no", "Podfile.lock"), log.New(io.Discard), func() error { return nil })
	if !errs.Is(err, errs.ErrCodeIO) {
		t.Errorf("watch() error = %v, want IO_ERROR", err)
	}
}

func TestWatch_RequiresOutput(t *testing.T) {
	lock := writeFile(t, t.TempDir(), "Podfile.lock", sampleLock)
	if _, _, err := execute(t, "--watch", lock); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestFileHash(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.lock", sampleLock)
	b := writeFile(t, dir, "b.lock", sampleLock)
	c := writeFile(t, dir, "c.lock", sampleLock+"\n")

	ha, err := fileHash(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, _ := fileHash(b)
	hc, _ := fileHash(c)
	if ha != hb {
		t.Error("identical files hash differently")
	}
	if ha == hc {
		t.Error("different files hash the same")
	}

	if _, err := fileHash(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
