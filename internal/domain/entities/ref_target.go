package entities

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"golang.org/x/mod/semver"
)

const (
	refPrefix      = "refs/"
	refSeparator   = "/"
	minRefSegments = 3
	refNameSegment = 2
	semverVPrefix  = "v"
)

// RefKind tells whether a RefTarget points at a branch or a tag.
type RefKind int

const (
	// RefNone is the zero value: no target was chosen.
	RefNone RefKind = iota
	RefBranch
	RefTag
)

func (k RefKind) String() string {
	switch k {
	case RefBranch:
		return "branch"
	case RefTag:
		return "tag"
	default:
		return "none"
	}
}

// RefTarget is either a branch or a tag. The zero value holds neither and is
// rejected by the sync operation.
type RefTarget struct {
	kind RefKind
	name string
}

// Branch returns a target pointing at the named branch.
func Branch(name string) RefTarget { return RefTarget{kind: RefBranch, name: name} }

// Tag returns a target pointing at the named tag.
func Tag(name string) RefTarget { return RefTarget{kind: RefTag, name: name} }

// NewRefTarget builds a target from an optional branch and an optional tag.
// Exactly one of them must be set.
func NewRefTarget(branch, tag *string) (RefTarget, error) {
	switch {
	case branch != nil && tag == nil:
		return Branch(*branch), nil
	case branch == nil && tag != nil:
		return Tag(*tag), nil
	default:
		return RefTarget{}, &InvalidSyncArgsError{Branch: branch, Tag: tag}
	}
}

func (t RefTarget) Kind() RefKind { return t.kind }
func (t RefTarget) Name() string { return t.name }
func (t RefTarget) IsBranch() bool { return t.kind == RefBranch }
func (t RefTarget) IsTag() bool { return t.kind == RefTag }
func (t RefTarget) IsValid() bool { return t.kind != RefNone }

// Branch returns the branch name, or nil when the target is not a branch.
func (t RefTarget) Branch() *string {
	if t.kind != RefBranch {
		return nil
	}
	name := t.name
	return &name
}

// Tag returns the tag name, or nil when the target is not a tag.
func (t RefTarget) Tag() *string {
	if t.kind != RefTag {
		return nil
	}
	name := t.name
	return &name
}

// IsRelease reports whether the target is a tag carrying a semantic version,
// with or without the leading "v".
func (t RefTarget) IsRelease() bool {
	if t.kind != RefTag {
		return false
	}
	version := t.name
	if !strings.HasPrefix(version, semverVPrefix) {
		version = semverVPrefix + version
	}
	return semver.IsValid(version)
}

func (t RefTarget) String() string {
	if !t.IsValid() {
		return ""
	}
	return t.kind.String() + " " + t.name
}

// ParseRef parses a CI ref of the form refs/<kind>/<name>. Names may contain
// "/". Kind "heads" yields a branch and every other kind yields a tag.
func ParseRef(ref string) (RefTarget, error) {
	segments := strings.Split(ref, refSeparator)
	if !strings.HasPrefix(ref, refPrefix) || len(segments) < minRefSegments {
		return RefTarget{}, &MalformedRefError{Ref: ref}
	}

	name := strings.Join(segments[refNameSegment:], refSeparator)
	if plumbing.ReferenceName(ref).IsBranch() {
		return Branch(name), nil
	}
	return Tag(name), nil
}

// IsConventionalRef reports whether ref uses one of the two kinds the API
// knows about (refs/heads/ or refs/tags/).
func IsConventionalRef(ref string) bool {
	name := plumbing.ReferenceName(ref)
	return name.IsBranch() || name.IsTag()
}
