// Package services implements the driving port interfaces.
// Services contain the core business logic: the ingestion orchestrator,
// cosine similarity search, and snapshot persistence, orchestrating
// calls to the driven ports (embedding provider, blob store).
package services
