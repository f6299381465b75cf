package cli

// Error codes for structured error responses. These codes are stable and can
// be relied upon by scripts and agents.
const (
	ErrDocUnreadable = "DOCUMENT_UNREADABLE"
	ErrNotFound      = "NOT_FOUND"
	ErrInvalidInput  = "INVALID_INPUT"
	ErrStoreError    = "STORE_ERROR"
	ErrSearchError   = "SEARCH_ERROR"
	ErrConfigInvalid = "CONFIG_INVALID"
	ErrInternal      = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	// WarnStaleAnnotations signals that the document's content changed since
	// its annotations were made; offsets may no longer line up.
	WarnStaleAnnotations = "STALE_ANNOTATIONS"
)
