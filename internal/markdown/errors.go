package markdown

import "errors"

// Sentinel errors for markdown conversion.
var (
	// ErrMalformedInlineMarkup indicates an unterminated **, _ or ` delimiter.
	ErrMalformedInlineMarkup = errors.New("malformed inline markup")

	// ErrMissingURL indicates a link or image span without a URL.
	ErrMissingURL = errors.New("inline span requires a URL")

	// ErrNoTitleFound indicates the document has no level-1 heading.
	ErrNoTitleFound = errors.New("no level-1 heading found")
)
