package semver

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Version is a release version made of three non-negative integers of
// unbounded size. Pre-release and build metadata are not part of the tag
// format and are not modeled.
//
// Versions are values: methods never modify the receiver's components.
// A nil component reads as zero, so the zero Version is 0.0.0.
type Version struct {
	Major *big.Int
	Minor *big.Int
	Patch *big.Int
}

// Fallback is the version used when a repository has no release tags yet.
var Fallback = New(0, 1, 0)

var (
	// tagRegex matches release tags of the exact form v<major>.<minor>.<patch>.
	// It captures:
	//   1. Major version
	//   2. Minor version
	//   3. Patch version
	tagRegex = regexp.MustCompile(`^v([0-9]+)\.([0-9]+)\.([0-9]+)$`)

	// ErrInvalidTag is returned when a tag does not name a release version.
	ErrInvalidTag = errors.New("invalid release tag")
)

// New returns the version major.minor.patch.
func New(major, minor, patch int64) Version {
	return Version{
		Major: big.NewInt(major),
		Minor: big.NewInt(minor),
		Patch: big.NewInt(patch),
	}
}

// String returns the canonical "major.minor.patch" form.
// Leading zeros from the original tag are not preserved.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(component(v.Major).String())
	sb.WriteByte('.')
	sb.WriteString(component(v.Minor).String())
	sb.WriteByte('.')
	sb.WriteString(component(v.Patch).String())
	return sb.String()
}

// Tag returns the version formatted as a release tag, e.g. "v1.2.3".
func (v Version) Tag() string {
	return "v" + v.String()
}

// ParseTag parses a release tag such as "v1.2.3".
//
// Surrounding whitespace is ignored. Anything other than a lowercase "v"
// followed by three dot-separated decimal groups is rejected, so "v1.2",
// "1.2.3", "v1.2.3-rc1" and "release-1.2.3" all return ErrInvalidTag.
// Leading zeros are accepted: "v01.02.03" parses to 1.2.3.
// Digit groups have no upper bound.
func ParseTag(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)

	matches := tagRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidTag, trimmed)
	}

	var parts [3]*big.Int
	for i, group := range matches[1:4] {
		n, ok := new(big.Int).SetString(group, 10)
		if !ok {
			return Version{}, fmt.Errorf("%w: invalid number %q in %q", ErrInvalidTag, group, trimmed)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// Compare compares two versions component by component.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
func (v Version) Compare(other Version) int {
	if c := component(v.Major).Cmp(component(other.Major)); c != 0 {
		return c
	}
	if c := component(v.Minor).Cmp(component(other.Minor)); c != 0 {
		return c
	}
	return component(v.Patch).Cmp(component(other.Patch))
}

// Equal reports whether v and other name the same version.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// BumpPatch returns v with the patch component incremented by one.
// There is no rollover: 1.2.9 becomes 1.2.10.
func (v Version) BumpPatch() Version {
	return Version{
		Major: new(big.Int).Set(component(v.Major)),
		Minor: new(big.Int).Set(component(v.Minor)),
		Patch: new(big.Int).Add(component(v.Patch), big.NewInt(1)),
	}
}

// Max returns the greatest of the given versions.
// The boolean is false when versions is empty.
func Max(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	highest := versions[0]
	for _, v := range versions[1:] {
		if v.Compare(highest) > 0 {
			highest = v
		}
	}
	return highest, true
}

var zero = new(big.Int)

func component(n *big.Int) *big.Int {
	if n == nil {
		return zero
	}
	return n
}
