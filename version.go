package tokenlist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the version of a token list, used in change detection.
//
// On the wire, the token list schema encodes a version as an object of the
// form {"major": 0, "minor": 1, "patch": 0}; the conventional dotted-string
// form is not valid and is rejected on decode. Pre-release and build metadata
// are not part of the schema.
type Version struct {
	v semver.Version
}

// NewVersion builds a Version from its major, minor and patch components.
func NewVersion(major, minor, patch uint64) Version {
	return Version{v: *semver.New(major, minor, patch, "", "")}
}

// Major returns the major component of the version.
func (v Version) Major() uint64 { return v.v.Major() }

// Minor returns the minor component of the version.
func (v Version) Minor() uint64 { return v.v.Minor() }

// Patch returns the patch component of the version.
func (v Version) Patch() uint64 { return v.v.Patch() }

// Compare returns -1, 0, or 1 if v is less than, equal to, or greater than
// other, following semantic version precedence.
func (v Version) Compare(other Version) int { return v.v.Compare(&other.v) }

// String returns the dotted display form, e.g. "0.1.0". This form never
// appears on the wire.
func (v Version) String() string { return v.v.String() }

// versionJSON is an internal struct for JSON serialization.
type versionJSON struct {
	Major uint64 `json:"major"`
	Minor uint64 `json:"minor"`
	Patch uint64 `json:"patch"`
}

// MarshalJSON encodes the version in the schema's object form.
func (v Version) MarshalJSON() ([]byte, error) {
	encoded, err := json.Marshal(versionJSON{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode version object: %w", err)
	}

	return encoded, nil
}

// UnmarshalJSON decodes the schema's object form, rejecting any other shape
// and any object missing one of the three components.
func (v *Version) UnmarshalJSON(data []byte) error {
	var fields struct {
		Major *uint64 `json:"major"`
		Minor *uint64 `json:"minor"`
		Patch *uint64 `json:"patch"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode version object: %w", err)
	}

	if fields.Major == nil {
		return errors.New("version object is missing required field 'major'")
	}

	if fields.Minor == nil {
		return errors.New("version object is missing required field 'minor'")
	}

	if fields.Patch == nil {
		return errors.New("version object is missing required field 'patch'")
	}

	*v = NewVersion(*fields.Major, *fields.Minor, *fields.Patch)

	return nil
}
