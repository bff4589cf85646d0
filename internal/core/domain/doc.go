// Package domain defines the core business entities for RepoLens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentChunk: A bounded span of indexed text with its embedding
//   - ChunkMetadata: Repository ownership and artifact provenance
//   - RepositoryArtifacts: The textual artifacts of one analyzed repository
//   - DocumentIndex: The ordered, in-memory collection of chunks
//   - SearchResult: A ranked similarity hit
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
