package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSTagLister lists repository tags by running the git binary.
type OSTagLister struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// Dir is the repository directory. Empty means the current directory.
	Dir string

	// OnError, if set, receives the failure that caused ListTags to return no tags.
	OnError func(err error)
}

// NewOSTagLister creates an OSTagLister that runs git in dir.
func NewOSTagLister(dir string) *OSTagLister {
	return &OSTagLister{
		execCommand: exec.CommandContext,
		Dir:         dir,
	}
}

// ListTags returns every tag defined in the repository, in no particular order.
//
// It never fails. When git is missing, the directory is not a repository, or
// the command exits non-zero, the failure is passed to OnError and an empty
// slice is returned, which callers treat the same as a repository with no tags.
func (g *OSTagLister) ListTags(ctx context.Context) []string {
	tags, err := g.listTags(ctx)
	if err != nil {
		if g.OnError != nil {
			g.OnError(err)
		}
		return []string{}
	}
	return tags
}

func (g *OSTagLister) listTags(ctx context.Context) ([]string, error) {
	cmd := g.execCommand(ctx, "git", "tag")
	cmd.Dir = g.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return nil, fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return nil, fmt.Errorf("git tag failed: %w", err)
	}

	// Tags are whitespace separated; one per line in practice.
	return strings.Fields(stdout.String()), nil
}
