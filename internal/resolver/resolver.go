// Package resolver decides the next release version from a repository's tags.
package resolver

import (
	"context"

	"github.com/indaco/nexttag/internal/semver"
)

// TagLister lists the tags of a repository.
// Implementations never fail; an unreadable repository yields no tags.
type TagLister interface {
	ListTags(ctx context.Context) []string
}

// Result describes how the next version was chosen.
type Result struct {
	// Next is the version to release.
	Next semver.Version
	// Latest is the highest release tag found. Valid only when Found is true.
	Latest semver.Version
	// Found reports whether any release tag was present.
	Found bool
	// Considered is the number of tags examined.
	Considered int
	// Skipped holds the tags that are not release tags.
	Skipped []string
}

// Resolver computes the next version using tags from a TagLister.
type Resolver struct {
	lister TagLister
}

// New creates a Resolver backed by lister.
func New(lister TagLister) *Resolver {
	return &Resolver{lister: lister}
}

// Resolve lists the repository tags and selects the next version.
func (r *Resolver) Resolve(ctx context.Context) Result {
	return Select(r.lister.ListTags(ctx))
}

// Select examines tags and selects the next version.
// Tags that are not of the form v<major>.<minor>.<patch> are ignored.
// With no release tags the result is semver.Fallback, without a bump;
// otherwise it is the highest release tag with its patch incremented.
func Select(tags []string) Result {
	res := Result{Considered: len(tags)}

	versions := make([]semver.Version, 0, len(tags))
	for _, tag := range tags {
		v, err := semver.ParseTag(tag)
		if err != nil {
			res.Skipped = append(res.Skipped, tag)
			continue
		}
		versions = append(versions, v)
	}

	highest, ok := semver.Max(versions)
	if !ok {
		res.Next = semver.Fallback
		return res
	}

	res.Latest = highest
	res.Found = true
	res.Next = highest.BumpPatch()
	return res
}
