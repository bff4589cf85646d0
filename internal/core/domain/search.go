package domain

// DefaultSearchLimit is the number of results returned when a caller does
// not specify a limit.
const DefaultSearchLimit = 5

// SearchResult represents a single similarity hit.
type SearchResult struct {
	// Content is the matched chunk text.
	Content string `json:"content"`

	// Metadata is the matched chunk's provenance.
	Metadata ChunkMetadata `json:"metadata"`

	// Score is the cosine similarity of the chunk against the query
	// embedding, in [-1, 1]. Results are ordered by non-increasing score;
	// equal scores keep insertion order.
	Score float64 `json:"score"`
}
