// Package extractors converts uploaded evidence bytes into plain text.
//
// Each media-type family has its own extractor in a subpackage
// (plaintext, pdf, docx), all implementing driven.TextExtractor. The
// Registry dispatches on the declared media type - the upload interface
// performs no content sniffing - and recovers every internal failure as
// an empty string so an upload never hard-fails.
package extractors
