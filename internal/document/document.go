// Package document handles reading and hashing text inputs.
package document

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// StdinName is the display name for text read from standard input.
const StdinName = "<stdin>"

// Document holds a loaded text input with its content and metadata.
type Document struct {
	FilePath string
	Raw      string
	Hash     string
}

// Load reads a text file and computes its SHA-256 hash.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document.Load: %w", err)
	}
	return fromBytes(path, data), nil
}

// Read consumes r fully and records it under name.
func Read(name string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document.Read: %w", err)
	}
	return fromBytes(name, data), nil
}

func fromBytes(path string, data []byte) *Document {
	h := sha256.Sum256(data)
	return &Document{
		FilePath: path,
		Raw:      string(data),
		Hash:     fmt.Sprintf("sha256:%x", h),
	}
}
