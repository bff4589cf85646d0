package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultMaxChunkSize, c.MaxChunkSize())
}

func TestNew_WithMaxChunkSize(t *testing.T) {
	c := New(WithMaxChunkSize(120))
	assert.Equal(t, 120, c.MaxChunkSize())
}

func TestNew_IgnoresInvalidMaxChunkSize(t *testing.T) {
	c := New(WithMaxChunkSize(0))
	assert.Equal(t, DefaultMaxChunkSize, c.MaxChunkSize())

	c = New(WithMaxChunkSize(-5))
	assert.Equal(t, DefaultMaxChunkSize, c.MaxChunkSize())
}

func TestChunkAll_EmptyText(t *testing.T) {
	c := New()
	assert.Empty(t, c.ChunkAll(""))
}

func TestChunkAll_WhitespaceOnly(t *testing.T) {
	c := New()
	assert.Empty(t, c.ChunkAll("   \n\t  "))
}

func TestChunkAll_SingleShortSentence(t *testing.T) {
	c := New(WithMaxChunkSize(500))

	chunks := c.ChunkAll("Short readme.")

	require.Len(t, chunks, 1)
	assert.Equal(t, "Short readme.", chunks[0])
}

func TestChunkAll_TextWithoutTerminator(t *testing.T) {
	c := New()

	chunks := c.ChunkAll("no punctuation at all")

	require.Len(t, chunks, 1)
	assert.Equal(t, "no punctuation at all", chunks[0])
}

func TestChunkAll_AccumulatesSentencesUpToMax(t *testing.T) {
	c := New(WithMaxChunkSize(30))

	chunks := c.ChunkAll("One fish. Two fish. Red fish. Blue fish.")

	require.Len(t, chunks, 2)
	assert.Equal(t, "One fish. Two fish. Red fish.", chunks[0])
	assert.Equal(t, "Blue fish.", chunks[1])
}

func TestChunkAll_FlushesBeforeOverflow(t *testing.T) {
	c := New(WithMaxChunkSize(25))

	chunks := c.ChunkAll("First sentence here. Second sentence here. Third.")

	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 25)
	}
}

func TestChunkAll_OversizedSentenceEmittedWhole(t *testing.T) {
	c := New(WithMaxChunkSize(10))

	long := "this single sentence is far longer than the configured maximum."
	chunks := c.ChunkAll(long)

	require.Len(t, chunks, 1)
	assert.Equal(t, long, chunks[0])
}

func TestChunkAll_OversizedSentenceBetweenShortOnes(t *testing.T) {
	c := New(WithMaxChunkSize(15))

	chunks := c.ChunkAll("Tiny. this middle sentence greatly exceeds the limit. Also tiny.")

	require.Len(t, chunks, 3)
	assert.Equal(t, "Tiny.", chunks[0])
	assert.Equal(t, "this middle sentence greatly exceeds the limit.", chunks[1])
	assert.Equal(t, "Also tiny.", chunks[2])
}

func TestChunkAll_TrailingTerminatorEmitsNoDegenerateChunk(t *testing.T) {
	c := New(WithMaxChunkSize(12))

	// The trailing terminator run must not produce a near-empty final chunk.
	chunks := c.ChunkAll("First bit. Second bit. ...")

	require.Len(t, chunks, 2)
	assert.Equal(t, "First bit.", chunks[0])
	assert.Equal(t, "Second bit.", chunks[1])
}

func TestChunkAll_TerminatorRunsStayWithSentence(t *testing.T) {
	c := New(WithMaxChunkSize(500))

	chunks := c.ChunkAll("Really?! Yes!!!")

	require.Len(t, chunks, 1)
	assert.Equal(t, "Really?! Yes!!!", chunks[0])
}

func TestChunkAll_JoinsSentencesAcrossNewlines(t *testing.T) {
	c := New(WithMaxChunkSize(500))

	chunks := c.ChunkAll("First line.\n\nSecond line.")

	require.Len(t, chunks, 1)
	assert.Equal(t, "First line. Second line.", chunks[0])
}

func TestChunkAll_NoChunkExceedsMaxUnlessSingleSentence(t *testing.T) {
	c := New(WithMaxChunkSize(40))

	text := strings.Repeat("A modest sentence of fixed width here. ", 20)
	chunks := c.ChunkAll(text)

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 40)
	}
}

func TestChunks_Restartable(t *testing.T) {
	c := New(WithMaxChunkSize(30))
	seq := c.Chunks("One fish. Two fish. Red fish. Blue fish.")

	var first, second []string
	for chunk := range seq {
		first = append(first, chunk)
	}
	for chunk := range seq {
		second = append(second, chunk)
	}

	assert.Equal(t, first, second)
}

func TestChunks_EarlyStop(t *testing.T) {
	c := New(WithMaxChunkSize(12))
	seq := c.Chunks("First bit. Second bit. Third bit.")

	var got []string
	for chunk := range seq {
		got = append(got, chunk)
		break
	}

	require.Len(t, got, 1)
	assert.Equal(t, "First bit.", got[0])
}
