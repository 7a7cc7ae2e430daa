// Package manifest defines the data-package manifest: the TOML document
// describing a distributable reader package's identity, bundled auxiliary
// files and dependency-checker rules.
package manifest

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the default manifest file name.
const ManifestName = "package.toml"

// Manifest represents the overall structure of the manifest file.
type Manifest struct {
	Package  *PackageInfo  `toml:"package"`
	Includes []IncludeRule `toml:"include,omitempty"`
	DepCheck *DepCheck     `toml:"depcheck,omitempty"`
}

// PackageInfo holds identity metadata for the package.
type PackageInfo struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Description string   `toml:"description,omitempty"`
	Readme      string   `toml:"readme,omitempty"`
	Keywords    []string `toml:"keywords,omitempty"`
	// Dynamic lists metadata fields resolved by the build backend rather
	// than declared here.
	Dynamic     []string          `toml:"dynamic,omitempty"`
	LicenseFile string            `toml:"license-file,omitempty"`
	PackageDir  string            `toml:"package-dir,omitempty"`
	Authors     []Author          `toml:"authors,omitempty"`
	URLs        map[string]string `toml:"urls,omitempty"`
	Classifiers []string          `toml:"classifiers,omitempty"`
	// RuntimeVersions and Platforms narrow where the package is supported.
	RuntimeVersions []string `toml:"runtime-versions,omitempty"`
	Platforms       []string `toml:"platforms,omitempty"`
}

// Author is a name/email pair.
type Author struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// IncludeRule declares auxiliary files bundled with the package: a glob
// pattern relative to the package root, with an optional integrity hash for
// single-file rules (the bundled interop archive).
type IncludeRule struct {
	Pattern string `toml:"pattern"`
	SHA256  string `toml:"sha256,omitempty"`
}

// DepCheck configures the dependency checker: declared-but-unused
// dependencies it must not flag, and the mapping from distribution name to
// import identifier where the two differ.
type DepCheck struct {
	AllowedUnused []string          `toml:"allowed-unused,omitempty"`
	NameMapping   map[string]string `toml:"name-mapping,omitempty"`
}

// New creates an empty Manifest with initialized sections.
func New() *Manifest {
	return &Manifest{
		Package: &PackageInfo{
			URLs: make(map[string]string),
		},
		DepCheck: &DepCheck{
			NameMapping: make(map[string]string),
		},
	}
}

// Load reads the manifest from dirPath and unmarshals it. Duplicate TOML
// keys are rejected by the decoder.
func Load(dirPath string) (*Manifest, error) {
	return LoadFile(filepath.Join(dirPath, ManifestName))
}

// LoadFile reads and unmarshals a manifest from an explicit file path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse unmarshals manifest TOML content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Write marshals the manifest and writes it to dirPath, overwriting any
// existing file.
func Write(dirPath string, m *Manifest) error {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(m); err != nil {
		return err
	}

	fullPath := filepath.Join(dirPath, ManifestName)
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, err = file.Write(buf.Bytes())
	return err
}
