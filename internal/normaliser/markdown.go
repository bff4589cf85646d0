// Package normaliser prepares artifact text for chunking and embedding.
// READMEs arrive as markdown; stripping formatting before embedding keeps
// chunk text close to natural language.
package normaliser

import (
	"regexp"
	"strings"
)

var (
	codeBlockPattern    = regexp.MustCompile("(?s)```[^`]*```")
	inlineCodePattern   = regexp.MustCompile("`([^`]+)`")
	imagePattern        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	linkPattern         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headingPattern      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blockquotePattern   = regexp.MustCompile(`(?m)^>\s*`)
	horizontalRule      = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	listMarkerPattern   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedListPattern = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown removes common markdown formatting, leaving plain prose.
// Code blocks are dropped entirely; inline code and link text survive as
// plain words. This is a simplified implementation that handles common cases.
func StripMarkdown(content string) string {
	content = codeBlockPattern.ReplaceAllString(content, "")
	content = inlineCodePattern.ReplaceAllString(content, "$1")
	content = imagePattern.ReplaceAllString(content, "")
	content = linkPattern.ReplaceAllString(content, "$1")
	content = headingPattern.ReplaceAllString(content, "")
	content = blockquotePattern.ReplaceAllString(content, "")
	content = horizontalRule.ReplaceAllString(content, "")
	content = listMarkerPattern.ReplaceAllString(content, "")
	content = numberedListPattern.ReplaceAllString(content, "")

	// Emphasis markers, after list handling so "* item" markers are gone.
	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")
	content = strings.ReplaceAll(content, "*", "")

	content = multiNewlinePattern.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
