package marksheet

import (
	"regexp"
	"strings"
)

// codeScanPages bounds the code dictionary scan: the legend appears near the
// document start, so only the first few pages are inspected.
const codeScanPages = 5

// A code declaration is an alphanumeric code of at least three characters,
// a dash or en-dash, then a name phrase terminated by a colon, a newline or
// the end of the scanned text.
var codeDeclPattern = regexp.MustCompile(`([A-Z0-9]{3,})\s*[-–]\s*([A-Za-z0-9\s\(\)/&\.\-]+?)(?::|\n|$)`)

// ExtractCodeNames builds the paper code dictionary from the first
// codeScanPages pages. Later declarations of the same code overwrite
// earlier ones.
func ExtractCodeNames(pages []string) CodeNameMap {
	mapping := make(CodeNameMap)

	limit := codeScanPages
	if len(pages) < limit {
		limit = len(pages)
	}

	for i := 0; i < limit; i++ {
		for _, m := range codeDeclPattern.FindAllStringSubmatch(pages[i], -1) {
			mapping[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
		}
	}

	return mapping
}
