// Package source resolves manifest locations: local paths, direct HTTP(S)
// URLs and the github:owner/repo/path@ref shorthand.
package source

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// rawContentBaseURL is the base URL raw GitHub content is fetched from. It
// is a variable so tests can point it at an httptest server.
var (
	rawContentBaseURL   = "https://raw.githubusercontent.com"
	rawContentBaseURLMu sync.Mutex
)

// SetRawContentBaseURL overrides the raw content base URL and returns a
// function restoring the previous value. Intended for tests.
func SetRawContentBaseURL(base string) (restore func()) {
	rawContentBaseURLMu.Lock()
	defer rawContentBaseURLMu.Unlock()
	previous := rawContentBaseURL
	rawContentBaseURL = base
	return func() {
		rawContentBaseURLMu.Lock()
		defer rawContentBaseURLMu.Unlock()
		rawContentBaseURL = previous
	}
}

func baseURL() string {
	rawContentBaseURLMu.Lock()
	defer rawContentBaseURLMu.Unlock()
	return rawContentBaseURL
}

// Location describes where a manifest lives.
type Location struct {
	// RawURL is the URL to download the manifest from; empty for local
	// paths.
	RawURL string
	// Path is the local filesystem path; empty for remote locations.
	Path string
}

// IsRemote reports whether the location needs to be downloaded.
func (l Location) IsRemote() bool {
	return l.RawURL != ""
}

// Resolve turns a manifest reference into a Location. Supported forms:
//
//	path/to/package.toml            local file
//	https://host/path/package.toml  direct URL
//	github:owner/repo/path@ref      raw GitHub content
func Resolve(ref string) (Location, error) {
	if strings.HasPrefix(ref, "github:") {
		rawURL, err := resolveGitHubShorthand(ref)
		if err != nil {
			return Location{}, err
		}
		return Location{RawURL: rawURL}, nil
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		u, err := url.Parse(ref)
		if err != nil {
			return Location{}, fmt.Errorf("failed to parse source URL %q: %w", ref, err)
		}
		if u.Host == "" {
			return Location{}, fmt.Errorf("source URL %q has no host", ref)
		}
		return Location{RawURL: u.String()}, nil
	}

	return Location{Path: ref}, nil
}

// resolveGitHubShorthand handles the github:owner/repo/path/to/file@ref
// form and returns the raw content URL it designates.
func resolveGitHubShorthand(ref string) (string, error) {
	content := strings.TrimPrefix(ref, "github:")

	lastAt := strings.LastIndex(content, "@")
	if lastAt == -1 {
		return "", fmt.Errorf("invalid github shorthand source %q: missing @ref (e.g. @main or @commitsha)", ref)
	}
	if lastAt == len(content)-1 {
		return "", fmt.Errorf("invalid github shorthand source %q: ref part is empty after @", ref)
	}

	repoAndPath := content[:lastAt]
	gitRef := content[lastAt+1:]

	parts := strings.Split(repoAndPath, "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("invalid github shorthand source %q: expected owner/repo/path/to/file, got %q", ref, repoAndPath)
	}
	owner, repo := parts[0], parts[1]
	pathInRepo := strings.Join(parts[2:], "/")
	if owner == "" || repo == "" || pathInRepo == "" {
		return "", fmt.Errorf("invalid github shorthand source %q: owner, repo and path must not be empty", ref)
	}

	return fmt.Sprintf("%s/%s/%s/%s/%s", baseURL(), owner, repo, gitRef, pathInRepo), nil
}
