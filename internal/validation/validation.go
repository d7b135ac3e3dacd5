// Package validation provides input validation for seiconf.
package validation

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// Network names: lowercase alphanumeric with underscores, 2-64 chars
var networkNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}[a-z0-9]$`)

// Oldest solc release that supports the settings we emit
const minCompilerVersion = "0.4.11"

// ValidateNetworkName validates a network key as used by the build tool
func ValidateNetworkName(name string) error {
	if len(name) < 2 {
		return errors.New("network name too short (min 2 chars)")
	}
	if len(name) > 64 {
		return errors.New("network name too long (max 64 chars)")
	}
	if !networkNameRegex.MatchString(name) {
		return errors.New("invalid network name: must be lowercase alphanumeric with underscores, starting with a letter")
	}
	if strings.Contains(name, "__") {
		return errors.New("invalid network name: consecutive underscores")
	}
	return nil
}

// ValidateCompilerVersion validates a solc release version (X.Y.Z, no prerelease)
func ValidateCompilerVersion(v string) error {
	normalized := NormalizeVersion(v)
	if normalized == "" {
		return errors.New("compiler version cannot be empty")
	}

	versionWithV := "v" + normalized
	if !semver.IsValid(versionWithV) {
		return errors.New("invalid compiler version: must be in format X.Y.Z")
	}
	if semver.Prerelease(versionWithV) != "" || semver.Build(versionWithV) != "" {
		return errors.New("invalid compiler version: nightly and prerelease builds are not supported")
	}
	if strings.Count(normalized, ".") != 2 {
		return errors.New("invalid compiler version: must be in format X.Y.Z (major.minor.patch)")
	}
	if semver.Major(versionWithV) != "v0" {
		return errors.New("unsupported compiler version: no solc release exists beyond 0.x")
	}
	if CompareVersions(normalized, minCompilerVersion) < 0 {
		return errors.New("unsupported compiler version: must be " + minCompilerVersion + " or newer")
	}
	return nil
}

// NormalizeVersion normalizes a version string (strips leading 'v')
func NormalizeVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}

// CompareVersions compares two versions
// Returns -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2
func CompareVersions(v1, v2 string) int {
	n1 := "v" + NormalizeVersion(v1)
	n2 := "v" + NormalizeVersion(v2)
	return semver.Compare(n1, n2)
}

// ValidateChainID validates a chain ID
func ValidateChainID(chainID int) error {
	if chainID <= 0 {
		return errors.New("chain ID must be positive")
	}
	return nil
}

// ValidateEndpointURL validates an RPC or explorer endpoint.
// Only absolute https URLs with a host are accepted.
func ValidateEndpointURL(raw string) error {
	if raw == "" {
		return errors.New("endpoint URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("invalid endpoint URL: " + err.Error())
	}
	if u.Scheme != "https" {
		return errors.New("invalid endpoint URL: scheme must be https")
	}
	if u.Host == "" {
		return errors.New("invalid endpoint URL: missing host")
	}
	return nil
}

// IsPresent reports whether a secret counts as set.
// An empty value is the same as an unset variable.
func IsPresent(secret string) bool {
	return secret != ""
}
