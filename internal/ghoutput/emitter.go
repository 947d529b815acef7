// Package ghoutput publishes the computed version to stdout and to the
// GitHub Actions step output file.
package ghoutput

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/indaco/nexttag/internal/semver"
)

// OutputKey is the step output name the version is published under.
const OutputKey = "version"

// OutputFilePerm is used when the output file does not exist yet.
const OutputFilePerm os.FileMode = 0o644

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error)
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Emitter writes the version to Stdout and, when OutputPath is set,
// appends a "version=<value>" line to the file at OutputPath.
type Emitter struct {
	Stdout     io.Writer
	OutputPath string
	fileOpener FileOpener
}

// NewEmitter creates an Emitter. An empty outputPath disables the file output.
// If opener is nil, files are opened with os.OpenFile.
func NewEmitter(stdout io.Writer, outputPath string, opener FileOpener) *Emitter {
	if opener == nil {
		opener = &osFileOpener{}
	}
	return &Emitter{
		Stdout:     stdout,
		OutputPath: outputPath,
		fileOpener: opener,
	}
}

// Emit publishes v. The output file is written first so that a misconfigured
// CI environment fails the run before anything is printed.
func (e *Emitter) Emit(v semver.Version) error {
	value := v.String()

	if e.OutputPath != "" {
		if err := e.appendOutput(value); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(e.Stdout, value); err != nil {
		return fmt.Errorf("failed to write version to stdout: %w", err)
	}
	return nil
}

func (e *Emitter) appendOutput(value string) (err error) {
	file, err := e.fileOpener.OpenFile(e.OutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, OutputFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", e.OutputPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close output file %q: %w", e.OutputPath, cerr))
		}
	}()

	if _, err := io.WriteString(file, FormatLine(OutputKey, value)); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", e.OutputPath, err)
	}
	return nil
}

// FormatLine renders a single step output line.
func FormatLine(key, value string) string {
	return key + "=" + value + "\n"
}
