// Package chunker splits artifact text into bounded, sentence-aligned chunks.
package chunker

import (
	"iter"
	"regexp"
	"strings"
)

// DefaultMaxChunkSize is the default soft bound on chunk length in bytes.
const DefaultMaxChunkSize = 500

// sentencePattern matches one sentence: a run of non-terminal characters
// followed by an optional run of sentence-terminal punctuation. A trailing
// fragment without a terminator still matches, so text with no punctuation
// yields a single sentence.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// Chunker accumulates consecutive sentences into chunks no longer than the
// configured max size. A single sentence longer than the max is never split;
// it is emitted whole as one oversized chunk.
type Chunker struct {
	maxChunkSize int
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithMaxChunkSize sets the soft chunk size bound in bytes.
func WithMaxChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.maxChunkSize = size
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		maxChunkSize: DefaultMaxChunkSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxChunkSize returns the configured soft size bound.
func (c *Chunker) MaxChunkSize() int {
	return c.maxChunkSize
}

// Chunks returns a lazy, finite, restartable sequence of chunks for text.
// Each yielded chunk is a run of whitespace-trimmed sentences joined by a
// single space. Sentences are flushed into a new chunk when appending the
// next one would push a non-empty buffer past the max size.
//
// Fragments with no content (whitespace or terminator runs left over by a
// trailing "." or "...") are skipped, so a trailing terminator never emits a
// degenerate chunk.
func (c *Chunker) Chunks(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var buf strings.Builder
		for _, sentence := range sentencePattern.FindAllString(text, -1) {
			sentence = strings.TrimSpace(sentence)
			if strings.Trim(sentence, ".!?") == "" {
				continue
			}
			if buf.Len() > 0 && buf.Len()+1+len(sentence) > c.maxChunkSize {
				if !yield(buf.String()) {
					return
				}
				buf.Reset()
			}
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(sentence)
		}
		if buf.Len() > 0 {
			yield(buf.String())
		}
	}
}

// ChunkAll collects the chunk sequence for text into a slice.
func (c *Chunker) ChunkAll(text string) []string {
	var chunks []string
	for chunk := range c.Chunks(text) {
		chunks = append(chunks, chunk)
	}
	return chunks
}
