// Package hasher computes the integrity hashes used to pin bundled
// auxiliary files, such as the zipped interop archive a manifest declares.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// CalculateSHA256 computes the SHA256 hash of the given content and returns
// it in the format "sha256:<hex_hash>".
func CalculateSHA256(content []byte) (string, error) {
	h := sha256.New()
	if _, err := h.Write(content); err != nil {
		return "", fmt.Errorf("failed to write content to hasher: %w", err)
	}
	return fmt.Sprintf("sha256:%s", hex.EncodeToString(h.Sum(nil))), nil
}

// HashFile computes the SHA256 hash of the file at path in the same
// "sha256:<hex_hash>" format.
func HashFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return CalculateSHA256(content)
}
