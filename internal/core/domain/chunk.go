package domain

// ArtifactType identifies which repository artifact a chunk was extracted from.
type ArtifactType string

// Artifact types produced by repository analysis.
const (
	// ArtifactReadme marks chunks extracted from the repository README.
	ArtifactReadme ArtifactType = "readme"

	// ArtifactFileExplanation marks chunks extracted from a generated
	// per-file explanation. These chunks carry the source file path.
	ArtifactFileExplanation ArtifactType = "fileExplanation"

	// ArtifactCriticalAnalysis marks chunks extracted from the generated
	// critical analysis of the repository.
	ArtifactCriticalAnalysis ArtifactType = "criticalAnalysis"

	// ArtifactChatMessage marks chunks extracted from the chat transcript
	// for the repository.
	ArtifactChatMessage ArtifactType = "chatMessage"
)

// Valid reports whether t is a known artifact type.
func (t ArtifactType) Valid() bool {
	switch t {
	case ArtifactReadme, ArtifactFileExplanation, ArtifactCriticalAnalysis, ArtifactChatMessage:
		return true
	default:
		return false
	}
}

// ChunkMetadata describes the provenance of a chunk.
type ChunkMetadata struct {
	// RepoURL is the owning repository identifier. All chunks for a
	// repository share this value; removal is scoped by it.
	RepoURL string `json:"repoUrl"`

	// Type is the artifact the chunk was extracted from.
	Type ArtifactType `json:"type"`

	// Path is the source file path. Present only for fileExplanation chunks.
	Path string `json:"path,omitempty"`
}

// DocumentChunk is the atomic unit of indexing: a bounded span of text with
// its embedding vector. A chunk is never stored without its embedding; the
// orchestrator embeds before insertion.
type DocumentChunk struct {
	// ID is the unique identifier for the chunk.
	ID string `json:"id"`

	// Content is the chunk text, softly bounded by the chunker's max size.
	Content string `json:"content"`

	// Metadata records repository ownership and artifact provenance.
	Metadata ChunkMetadata `json:"metadata"`

	// Embedding is the fixed-dimension vector representation of Content.
	Embedding []float32 `json:"embedding"`
}

// ChatMessage is one turn of the analysis chat for a repository.
type ChatMessage struct {
	// Role is the speaker, typically "user" or "assistant".
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// RepositoryArtifacts bundles the textual artifacts of one analyzed
// repository for ingestion. All fields other than URL are optional.
type RepositoryArtifacts struct {
	// URL identifies the repository. Required.
	URL string `json:"url"`

	// Readme is the repository README text.
	Readme string `json:"readme,omitempty"`

	// CriticalAnalysis is the generated critical analysis text.
	CriticalAnalysis string `json:"criticalAnalysis,omitempty"`

	// FileExplanations maps file path to its generated explanation.
	FileExplanations map[string]string `json:"fileExplanations,omitempty"`

	// ChatMessages is the chat transcript, in original order.
	ChatMessages []ChatMessage `json:"chatMessages,omitempty"`
}
