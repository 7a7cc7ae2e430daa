package manifest

import (
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/chromatools/agd/internal/core/hasher"
)

var (
	// packageNamePattern matches normalized distribution names.
	packageNamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	// importNamePattern matches plausible import identifiers, dots allowed
	// for subpackages.
	importNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
)

// Validate checks the manifest against the structural rules a build of the
// package depends on and returns one message per problem found. rootDir is
// the package root that file references and include patterns resolve
// against; pass "" to skip filesystem checks.
func (m *Manifest) Validate(rootDir string) []string {
	var problems []string

	if m.Package == nil {
		return []string{"missing [package] section"}
	}
	pkg := m.Package

	if pkg.Name == "" {
		problems = append(problems, "package name must not be empty")
	} else if !packageNamePattern.MatchString(pkg.Name) {
		problems = append(problems, fmt.Sprintf("package name %q is not a valid distribution name", pkg.Name))
	}

	if pkg.Version == "" {
		problems = append(problems, "package version must not be empty")
	} else if _, err := semver.NewVersion(pkg.Version); err != nil {
		problems = append(problems, fmt.Sprintf("package version %q is not a valid version: %v", pkg.Version, err))
	}

	for i, author := range pkg.Authors {
		if author.Name == "" {
			problems = append(problems, fmt.Sprintf("author %d has an empty name", i+1))
		}
		if author.Email == "" {
			problems = append(problems, fmt.Sprintf("author %q has no email address", author.Name))
		} else if _, err := mail.ParseAddress(author.Email); err != nil {
			problems = append(problems, fmt.Sprintf("author %q has an invalid email address %q", author.Name, author.Email))
		}
	}

	for label, raw := range pkg.URLs {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("URL %q (%s) is not a valid absolute URL", label, raw))
			continue
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			problems = append(problems, fmt.Sprintf("URL %q (%s) must use http or https", label, raw))
		}
	}

	if rootDir != "" {
		for _, ref := range []struct{ label, path string }{
			{"readme", pkg.Readme},
			{"license-file", pkg.LicenseFile},
			{"package-dir", pkg.PackageDir},
		} {
			if ref.path == "" {
				continue
			}
			if _, err := os.Stat(filepath.Join(rootDir, ref.path)); err != nil {
				problems = append(problems, fmt.Sprintf("%s %q does not exist in the package tree", ref.label, ref.path))
			}
		}
	}

	problems = append(problems, m.validateIncludes(rootDir)...)
	problems = append(problems, m.validateDepCheck()...)
	return problems
}

func (m *Manifest) validateIncludes(rootDir string) []string {
	var problems []string

	for _, rule := range m.Includes {
		if rule.Pattern == "" {
			problems = append(problems, "include rule with empty pattern")
			continue
		}
		if rootDir == "" {
			continue
		}

		matches, err := filepath.Glob(filepath.Join(rootDir, rule.Pattern))
		if err != nil {
			problems = append(problems, fmt.Sprintf("include pattern %q is malformed: %v", rule.Pattern, err))
			continue
		}
		if len(matches) == 0 {
			problems = append(problems, fmt.Sprintf("include pattern %q matches no files", rule.Pattern))
			continue
		}

		if rule.SHA256 == "" {
			continue
		}
		if len(matches) != 1 {
			problems = append(problems, fmt.Sprintf("include pattern %q declares a checksum but matches %d files", rule.Pattern, len(matches)))
			continue
		}
		content, err := os.ReadFile(matches[0])
		if err != nil {
			problems = append(problems, fmt.Sprintf("cannot read %q to verify its checksum: %v", matches[0], err))
			continue
		}
		actual, err := hasher.CalculateSHA256(content)
		if err != nil {
			problems = append(problems, fmt.Sprintf("cannot hash %q: %v", matches[0], err))
			continue
		}
		if actual != rule.SHA256 {
			problems = append(problems, fmt.Sprintf("checksum mismatch for %q: manifest declares %s, file is %s", rule.Pattern, rule.SHA256, actual))
		}
	}
	return problems
}

func (m *Manifest) validateDepCheck() []string {
	if m.DepCheck == nil {
		return nil
	}

	var problems []string

	seen := make(map[string]bool)
	for _, name := range m.DepCheck.AllowedUnused {
		if !packageNamePattern.MatchString(name) {
			problems = append(problems, fmt.Sprintf("allowed-unused entry %q is not a valid distribution name", name))
		}
		if seen[name] {
			problems = append(problems, fmt.Sprintf("allowed-unused entry %q is listed twice", name))
		}
		seen[name] = true
	}

	for dist, importName := range m.DepCheck.NameMapping {
		if !packageNamePattern.MatchString(dist) {
			problems = append(problems, fmt.Sprintf("name-mapping key %q is not a valid distribution name", dist))
		}
		if !importNamePattern.MatchString(importName) {
			problems = append(problems, fmt.Sprintf("name-mapping value %q for %q is not a plausible import identifier", importName, dist))
		}
	}
	return problems
}
