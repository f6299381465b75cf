// Package source abstracts where document text comes from. The annotation
// core never touches the filesystem for document content directly; the host
// supplies a Source, which keeps platform file-access quirks out of the core.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnreadable indicates the document text could not be read (missing file,
// revoked permission, I/O failure). It is surfaced to the caller because it
// is user-actionable, unlike a missing annotation record.
var ErrUnreadable = errors.New("document unreadable")

// Source resolves document identifiers to raw text and display names.
type Source interface {
	// Read returns the document's raw text. Failures wrap ErrUnreadable.
	Read(uri string) (string, error)
	// DisplayName returns a human-readable name for the document.
	DisplayName(uri string) string
}

// FileSource reads documents from the local filesystem, treating the uri as
// a path.
type FileSource struct{}

func (FileSource) Read(uri string) (string, error) {
	data, err := os.ReadFile(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, uri, err)
	}
	return string(data), nil
}

func (FileSource) DisplayName(uri string) string {
	return filepath.Base(uri)
}
