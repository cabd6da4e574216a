package marksheet

import (
	"regexp"
	"strconv"
	"strings"
)

// lineKind tags the shapes a gazette chunk line can take. Marks lines are
// not tagged: a marks row is only meaningful by position (the line after a
// header or code-table row), never by its own shape.
type lineKind int

const (
	lineUnrecognized lineKind = iota
	lineHeader
	lineCodeTable
)

var (
	// Header row: seat number, uppercase name, a pipe-delimited code
	// segment, then the literal result token.
	headerPattern = regexp.MustCompile(`^(\d{7})\s+([A-Z\s/]+?)\s+\|(.+?)\|\s*(Successful|Unsuccessful)`)

	// A second code table is introduced either by a "(N)letters" marker or
	// by another pipe-delimited code row.
	codeTableMarker = regexp.MustCompile(`\(\d+\)\w+`)
	codeCellPattern = regexp.MustCompile(`\|\s*[A-Z0-9]{3,}\s`)

	// Paper codes embedded in a pipe-delimited row.
	rowCodePattern = regexp.MustCompile(`\|([A-Z0-9]{3,})\s`)

	// Trailing aggregate-score marker on successful records.
	sgpiPattern = regexp.MustCompile(`\b(\d+\.\d+)\b\s+--`)

	// Consolidated family candidate row: seat number, optional slash,
	// uppercase name, pipe.
	consolidatedRowPattern = regexp.MustCompile(`(\d{7})\s*/?\s*([A-Z][A-Z\s\.]*?)\s*\|`)

	digitRunPattern = regexp.MustCompile(`\d+`)
)

// headerFields is the decoded identity portion of a gazette header row.
type headerFields struct {
	seatNo string
	name   string
	result string
}

// classifyLine tags one trimmed, non-empty chunk line.
func classifyLine(line string) lineKind {
	if headerPattern.MatchString(line) {
		return lineHeader
	}
	if codeTableMarker.MatchString(line) || codeCellPattern.MatchString(line) {
		return lineCodeTable
	}
	return lineUnrecognized
}

// parseHeader decodes a header row. The boolean is false when the line is
// not a header, which is the routine signal that a chunk is not a student
// record at all.
func parseHeader(line string) (headerFields, bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return headerFields{}, false
	}
	return headerFields{
		seatNo: strings.TrimSpace(m[1]),
		name:   strings.TrimSpace(m[2]),
		result: strings.TrimSpace(m[4]),
	}, true
}

// rowCodes extracts the paper codes from a pipe-delimited row, in order.
func rowCodes(line string) []string {
	var codes []string
	for _, m := range rowCodePattern.FindAllStringSubmatch(line, -1) {
		codes = append(codes, m[1])
	}
	return codes
}

// rowMarks splits a marks row on pipes and takes, for every cell after the
// first, the last embedded integer. Cells without digits contribute nothing.
func rowMarks(line string) []int {
	var marks []int
	cells := strings.Split(line, "|")
	if len(cells) < 2 {
		return nil
	}
	for _, cell := range cells[1:] {
		if n, ok := lastInt(cell); ok {
			marks = append(marks, n)
		}
	}
	return marks
}

// lastInt returns the last run of digits embedded in s as an integer.
func lastInt(s string) (int, bool) {
	runs := digitRunPattern.FindAllString(s, -1)
	if len(runs) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(runs[len(runs)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// findSGPI scans chunk lines in reverse for the trailing aggregate marker
// (a decimal immediately followed by " --"). First match wins.
func findSGPI(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if m := sgpiPattern.FindStringSubmatch(lines[i]); m != nil {
			return m[1]
		}
	}
	return ""
}

// decodeCell applies the consolidated family's cell rule and yields at most
// one mark per cell. A cell of exactly three whitespace-separated
// alphanumeric tokens yields the last integer embedded in the third; a cell
// of one or more dash separators followed by two alphanumeric tokens yields
// the last integer embedded in the second. Anything else is not a mark cell.
func decodeCell(cell string) (int, bool) {
	fields := strings.Fields(cell)

	dashes := 0
	for _, f := range fields {
		if isDashRun(f) {
			dashes++
			continue
		}
		break
	}
	tokens := fields[dashes:]
	for _, t := range tokens {
		if isDashRun(t) {
			return 0, false
		}
	}

	switch {
	case dashes == 0 && len(tokens) == 3:
		return lastInt(tokens[2])
	case dashes >= 1 && len(tokens) == 2:
		return lastInt(tokens[1])
	}
	return 0, false
}

// isDashRun reports whether a token consists only of dash-like separators.
func isDashRun(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		switch r {
		case '-', '–', '—':
		default:
			return false
		}
	}
	return true
}
