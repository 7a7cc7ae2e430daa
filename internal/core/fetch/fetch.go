// Package fetch retrieves remote manifest content over HTTP.
package fetch

import (
	"fmt"
	"io"
	"net/http"
)

// maxManifestSize caps remote manifest downloads; a manifest is a small
// configuration document.
const maxManifestSize = 1 << 20

// Download fetches the content at the given URL. It returns the content as
// a byte slice, or an error when the request fails or the HTTP status code
// is not 200 OK.
func Download(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to perform GET request to %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from %s: received status code %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", url, err)
	}
	return body, nil
}
