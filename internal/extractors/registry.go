package extractors

import (
	"context"
	"strings"

	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/claimmate-cli/internal/extractors/docx"
	"github.com/custodia-labs/claimmate-cli/internal/extractors/pdf"
	"github.com/custodia-labs/claimmate-cli/internal/extractors/plaintext"
	"github.com/custodia-labs/claimmate-cli/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry selects an extractor by declared media type.
// Unknown types fall back to the plaintext extractor's best-effort
// UTF-8 decode, so extraction never hard-fails.
type Registry struct {
	byType   map[string]driven.TextExtractor
	fallback driven.TextExtractor
}

// NewRegistry creates a registry with the default extractor set.
func NewRegistry() *Registry {
	r := &Registry{
		byType:   make(map[string]driven.TextExtractor),
		fallback: plaintext.New(),
	}
	r.Register(plaintext.New())
	r.Register(pdf.New())
	r.Register(docx.New())
	return r
}

// Register adds an extractor for each of its supported media types.
// Later registrations win on conflict.
func (r *Registry) Register(e driven.TextExtractor) {
	for _, mt := range e.SupportedMediaTypes() {
		r.byType[mt] = e
	}
}

// Extract dispatches on the declared media type and returns the
// extracted text. On any internal failure it logs a warning and returns
// an empty string - never an error.
func (r *Registry) Extract(ctx context.Context, content []byte, mediaType, name string) string {
	text, err := r.lookup(mediaType).Extract(ctx, content, name)
	if err != nil {
		logger.Warn("extraction failed for %s (%s): %v", name, mediaType, err)
		return ""
	}
	return text
}

// lookup finds the extractor for a declared media type. Exact matches
// win; "text/*" covers the text tree; everything else gets the
// best-effort fallback.
func (r *Registry) lookup(mediaType string) driven.TextExtractor {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if e, ok := r.byType[mt]; ok {
		return e
	}
	if strings.HasPrefix(mt, "text/") {
		if e, ok := r.byType["text/*"]; ok {
			return e
		}
	}
	return r.fallback
}
