// Package domain defines the core business entities for ClaimMate.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Workspace: The single persisted aggregate for one claim case
//   - Document: An uploaded evidence file with extracted text
//   - SymptomMapping: A model-proposed condition record
//   - Claim: A saved personal statement
//   - MappingResult: The tagged outcome of parsing a mapping completion
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
