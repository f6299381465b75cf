package cli

import (
	"fmt"
	"path/filepath"

	"github.com/marginnotes/margin/internal/source"
	"github.com/marginnotes/margin/internal/store"
)

// openStore opens the resolved notes directory.
func openStore() (*store.Store, error) {
	return store.Open(resolvedNotesDir)
}

// documentURI canonicalizes a document path argument into the uri used as
// the document's stable identifier.
func documentURI(arg string) (string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", arg, err)
	}
	return abs, nil
}

// openDocument opens an annotation session for a document path.
func openDocument(arg string) (*store.Document, error) {
	uri, err := documentURI(arg)
	if err != nil {
		return nil, err
	}
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	return s.OpenDocument(source.FileSource{}, uri)
}

// staleWarnings returns the warning list for a session, for JSON output.
func staleWarnings(stale bool) []Warning {
	if !stale {
		return nil
	}
	return []Warning{{
		Code:    WarnStaleAnnotations,
		Message: "document content changed since annotations were made; offsets may be off",
	}}
}
