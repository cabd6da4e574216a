package marksheet

import "regexp"

// A chunk boundary is a line break immediately followed by optional
// whitespace and a 7-digit seat number token.
var chunkAnchorPattern = regexp.MustCompile(`\n\s*\d{7}\s`)

// SegmentBlocks splits the document text into candidate student-record
// chunks. The split is zero-width: each chunk after the first begins at the
// line break preceding its seat number, so the anchor digits stay inside the
// chunk. The first chunk is the preamble before the first anchor; it is not
// special-cased here because it fails the downstream header match anyway.
func SegmentBlocks(text string) []string {
	matches := chunkAnchorPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	chunks := make([]string, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		chunks = append(chunks, text[prev:m[0]])
		prev = m[0]
	}
	chunks = append(chunks, text[prev:])

	return chunks
}
