package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles plain text documents and serves as the best-effort
// fallback for unrecognised media types.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMediaTypes returns the media types this extractor handles.
// The "text/*" entry matches the whole text tree.
func (e *Extractor) SupportedMediaTypes() []string {
	return []string{
		"text/*",
		"application/json",
		"application/xml",
	}
}

// Extract decodes the content as UTF-8, replacing undecodable bytes
// rather than failing.
func (e *Extractor) Extract(_ context.Context, content []byte, _ string) (string, error) {
	return strings.ToValidUTF8(string(content), "�"), nil
}
