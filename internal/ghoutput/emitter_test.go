package ghoutput

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/nexttag/internal/semver"
)

// mockFile records writes and can fail on write or close.
type mockFile struct {
	buf      bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (f *mockFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.buf.Write(p)
}

func (f *mockFile) Close() error {
	f.closed = true
	return f.closeErr
}

type mockOpener struct {
	file    *mockFile
	openErr error
	gotFlag int
}

func (o *mockOpener) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	o.gotFlag = flag
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.file, nil
}

func TestEmitter_StdoutOnly(t *testing.T) {
	var stdout bytes.Buffer
	opener := &mockOpener{file: &mockFile{}}
	e := NewEmitter(&stdout, "", opener)

	if err := e.Emit(semver.New(1, 2, 4)); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if got := stdout.String(); got != "1.2.4\n" {
		t.Errorf("stdout = %q, want %q", got, "1.2.4\n")
	}
	if opener.gotFlag != 0 {
		t.Error("output file should not be opened when OutputPath is empty")
	}
}

func TestEmitter_AppendsToOutputFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "github_output")
	if err := os.WriteFile(path, []byte("previous=step\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	e := NewEmitter(&stdout, path, nil)

	if err := e.Emit(semver.New(2, 5, 2)); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "previous=step\nversion=2.5.2\n"; string(data) != want {
		t.Errorf("output file = %q, want %q", data, want)
	}
	if got := stdout.String(); got != "2.5.2\n" {
		t.Errorf("stdout = %q, want %q", got, "2.5.2\n")
	}
}

func TestEmitter_CreatesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	e := NewEmitter(io.Discard, path, nil)

	if err := e.Emit(semver.Fallback); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "version=0.1.0\n" {
		t.Errorf("output file = %q", data)
	}
}

func TestEmitter_OpenError(t *testing.T) {
	var stdout bytes.Buffer
	openErr := errors.New("permission denied")
	e := NewEmitter(&stdout, "/ci/output", &mockOpener{openErr: openErr})

	err := e.Emit(semver.New(1, 0, 0))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, openErr) {
		t.Errorf("error = %v, want wrapped %v", err, openErr)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty on failure, got %q", stdout.String())
	}
}

func TestEmitter_WriteErrorStillCloses(t *testing.T) {
	writeErr := errors.New("disk full")
	file := &mockFile{writeErr: writeErr}
	e := NewEmitter(io.Discard, "/ci/output", &mockOpener{file: file})

	err := e.Emit(semver.New(1, 0, 0))
	if !errors.Is(err, writeErr) {
		t.Errorf("error = %v, want wrapped %v", err, writeErr)
	}
	if !file.closed {
		t.Error("file was not closed after a write error")
	}
}

func TestEmitter_CloseError(t *testing.T) {
	closeErr := errors.New("close failed")
	file := &mockFile{closeErr: closeErr}
	e := NewEmitter(io.Discard, "/ci/output", &mockOpener{file: file})

	err := e.Emit(semver.New(1, 0, 0))
	if !errors.Is(err, closeErr) {
		t.Errorf("error = %v, want wrapped %v", err, closeErr)
	}
	if !strings.Contains(file.buf.String(), "version=1.0.0") {
		t.Errorf("file content = %q", file.buf.String())
	}
}

func TestEmitter_OpensForAppend(t *testing.T) {
	opener := &mockOpener{file: &mockFile{}}
	e := NewEmitter(io.Discard, "/ci/output", opener)

	if err := e.Emit(semver.Version{}); err != nil {
		t.Fatal(err)
	}
	if opener.gotFlag&os.O_APPEND == 0 {
		t.Error("output file must be opened with O_APPEND")
	}
	if opener.gotFlag&os.O_CREATE == 0 {
		t.Error("output file must be opened with O_CREATE")
	}
}

func TestEmitter_DirectoryPath(t *testing.T) {
	e := NewEmitter(io.Discard, t.TempDir(), nil)
	if err := e.Emit(semver.Fallback); err == nil {
		t.Error("expected error when OutputPath is a directory")
	}
}

func TestFormatLine(t *testing.T) {
	if got := FormatLine("version", "1.2.3"); got != "version=1.2.3\n" {
		t.Errorf("FormatLine() = %q", got)
	}
}
