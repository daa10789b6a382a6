package utils

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Get the sha256 of a local file, "" when it does not exist
func GetFileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("GetFileHash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("GetFileHash: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Get the sha256 of in-memory content, comparable with GetFileHash
func GetContentHash(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}
