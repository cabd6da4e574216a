package marksheet

import "strings"

// GazetteStrategy decodes the gazette marksheet family: per-student chunks
// with a header row (seat number, name, pipe-delimited paper codes, result
// token), a marks row beneath it, an optional second code table, and an
// optional trailing aggregate (SGPI) marker.
type GazetteStrategy struct{}

// Family implements RecordStrategy.
func (GazetteStrategy) Family() string { return "gazette" }

// Extract builds the document-scoped grading and code context, segments the
// text into candidate chunks and decodes each one. Chunks that are not
// student records are filtered silently.
func (s GazetteStrategy) Extract(doc Document) (*Extraction, error) {
	bands := ParseGradingScale(doc.Text)
	names := ExtractCodeNames(doc.Pages)

	var students []StudentRecord
	for _, chunk := range SegmentBlocks(doc.Text) {
		if rec, ok := s.ParseChunk(chunk, bands, names); ok {
			students = append(students, rec)
		}
	}

	return &Extraction{Students: students}, nil
}

// ParseChunk decodes one candidate chunk into a student record. The boolean
// is false when the chunk does not open with a header row; that is routine
// filtering (page footers, legend text), not an error.
func (s GazetteStrategy) ParseChunk(chunk string, bands []GradeBand, names CodeNameMap) (StudentRecord, bool) {
	lines := trimmedLines(chunk)
	if len(lines) == 0 {
		return StudentRecord{}, false
	}

	header, ok := parseHeader(lines[0])
	if !ok {
		return StudentRecord{}, false
	}

	codes1 := rowCodes(lines[0])
	var totals1 []int
	if len(lines) > 1 {
		totals1 = rowMarks(lines[1])
	}

	// Second code table, if any, lives below the header. Its marks are on
	// the line immediately following it.
	var codes2 []string
	var totals2 []int
	for i := 1; i < len(lines); i++ {
		if classifyLine(lines[i]) != lineCodeTable {
			continue
		}
		codes2 = rowCodes(lines[i])
		if i+1 < len(lines) {
			totals2 = rowMarks(lines[i+1])
		}
		break
	}

	rec := StudentRecord{
		SeatNo: header.seatNo,
		Name:   header.name,
		Result: header.result,
	}
	rec.Papers = append(rec.Papers, zipPapers(codes1, totals1, bands, names)...)
	rec.Papers = append(rec.Papers, zipPapers(codes2, totals2, bands, names)...)

	if strings.EqualFold(rec.Result, ResultSuccessful) {
		rec.SGPI = findSGPI(lines)
	}

	return rec, true
}

// zipPapers pairs codes with totals positionally. Unpaired extras on either
// side are dropped; noisy rows are the normal case, not an error.
func zipPapers(codes []string, totals []int, bands []GradeBand, names CodeNameMap) []PaperResult {
	n := len(codes)
	if len(totals) < n {
		n = len(totals)
	}

	papers := make([]PaperResult, 0, n)
	for i := 0; i < n; i++ {
		p := PaperResult{
			Code:  codes[i],
			Name:  names.NameFor(codes[i]),
			Total: totals[i],
		}
		if grade, ok := GradeFor(bands, float64(totals[i])); ok {
			p.Grade = grade
		}
		papers = append(papers, p)
	}
	return papers
}

// trimmedLines returns the whitespace-trimmed, non-empty lines of a chunk.
func trimmedLines(chunk string) []string {
	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
