package marksheet

import (
	"regexp"
	"strconv"
	"strings"
)

// structureWindow bounds the subject-table scan after the structural anchor.
const structureWindow = 5000

// Anchor phrases for the consolidated family's subject table, checked
// case-insensitively in order.
var structureAnchors = []string{
	"UNIVERSITY OF MUMBAI",
	"OFFICE REGISTER",
	"CONSOLIDATED RESULT",
}

// A subject declaration inside the table window: code, dash, name phrase up
// to a colon, then the 2-3 digit maximum marks immediately before a literal
// "/0" denominator marker.
var subjectDeclPattern = regexp.MustCompile(`(?s)([A-Z0-9]{3,})\s*[-–].*?:.*?(\d{2,3})/0`)

// ExtractSubjectStructure locates the consolidated family's structural
// anchor and parses the subject-code/max-marks table from a bounded window
// following it. Duplicate codes keep their first occurrence.
//
// A nil return signals that the schema could not be determined; the caller
// must treat that as a fatal precondition, not a degraded mode, because
// percentage computation needs the per-subject maxima.
func ExtractSubjectStructure(text string) *SubjectStructure {
	start := findStructureAnchor(text)
	if start < 0 {
		return nil
	}

	end := start + structureWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]

	structure := &SubjectStructure{}
	for _, m := range subjectDeclPattern.FindAllStringSubmatch(window, -1) {
		maxMarks, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		structure.Add(m[1], maxMarks)
	}

	if structure.Len() == 0 {
		return nil
	}
	return structure
}

// findStructureAnchor returns the offset of the first matching anchor
// phrase, or -1 when none is present.
func findStructureAnchor(text string) int {
	upper := strings.ToUpper(text)
	for _, anchor := range structureAnchors {
		if idx := strings.Index(upper, anchor); idx >= 0 {
			return idx
		}
	}
	return -1
}
