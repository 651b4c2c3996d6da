package driven

import "context"

// TextExtractor converts uploaded bytes of one media-type family into
// plain text. Extraction is a pure function of the input bytes - no
// content sniffing, no side effects on the workspace.
type TextExtractor interface {
	// SupportedMediaTypes returns the declared media types this
	// extractor handles. A single "text/*" entry matches the whole
	// text tree.
	SupportedMediaTypes() []string

	// Extract converts content to plain text. Implementations return an
	// error for inputs they cannot decode; the registry absorbs it into
	// an empty string so uploads never hard-fail.
	Extract(ctx context.Context, content []byte, name string) (string, error)
}

// ExtractorRegistry selects a TextExtractor by declared media type and
// recovers from extraction failures.
type ExtractorRegistry interface {
	// Extract dispatches on the declared media type and returns the
	// extracted text. On any internal failure it logs a warning and
	// returns an empty string - never an error.
	Extract(ctx context.Context, content []byte, mediaType, name string) string
}
