// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - EmbeddingService: Converts text into fixed-dimension vectors via an
//     external provider. Required for ingestion and similarity search.
//   - BlobStore: Opaque durable key-value blob storage used to persist the
//     index snapshot across sessions.
package driven
