package marksheet

import "strings"

// consolidatedScanWindow is the number of lines, inclusive of the candidate
// row, inspected for one student's marks.
const consolidatedScanWindow = 20

// ConsolidatedStrategy decodes the consolidated marksheet family: a subject
// table after a structural anchor fixes the schema, then each student's
// marks are recovered positionally from pipe-delimited rows.
type ConsolidatedStrategy struct{}

// Family implements RecordStrategy.
func (ConsolidatedStrategy) Family() string { return "consolidated" }

// consolidatedStudent is an accepted candidate before aggregation. Marks are
// in discovery order and exactly as long as the subject structure.
type consolidatedStudent struct {
	seatNo string
	name   string
	marks  []int
}

// Extract locates the subject structure and scans the anchored text for
// student rows. A missing structure and an empty student list are both
// fatal for the document: the caller must be able to tell "parsing failed"
// from "valid document with zero students".
func (s ConsolidatedStrategy) Extract(doc Document) (*Extraction, error) {
	structure := ExtractSubjectStructure(doc.Text)
	if structure == nil {
		return nil, ErrSchemaUndetected
	}

	start := findStructureAnchor(doc.Text)
	students := s.scanStudents(doc.Text[start:], structure.Len())
	if len(students) == 0 {
		return nil, ErrNoRecords
	}

	return &Extraction{
		Percentages: buildPercentages(students, structure),
		Subjects:    structure,
	}, nil
}

// scanStudents walks the anchored text line by line. Each line matching the
// candidate row shape opens a bounded window; the candidate is accepted only
// if the window yields at least subjectCount marks, and its marks list is
// truncated to exactly subjectCount entries.
func (s ConsolidatedStrategy) scanStudents(text string, subjectCount int) []consolidatedStudent {
	if subjectCount == 0 {
		return nil
	}

	lines := strings.Split(text, "\n")
	var students []consolidatedStudent

	for i, line := range lines {
		m := consolidatedRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		marks := s.collectMarks(lines[i:], subjectCount)
		if len(marks) < subjectCount {
			// Insufficient data inside the window; the candidate is
			// discarded whole, never emitted partially.
			continue
		}

		students = append(students, consolidatedStudent{
			seatNo: m[1],
			name:   strings.TrimSpace(m[2]),
			marks:  marks[:subjectCount],
		})
	}

	return students
}

// collectMarks decodes cells across the scan window, stopping early once
// enough marks are found. Most cells are non-mark content and yield nothing.
func (s ConsolidatedStrategy) collectMarks(window []string, want int) []int {
	limit := consolidatedScanWindow
	if len(window) < limit {
		limit = len(window)
	}

	var marks []int
	for i := 0; i < limit; i++ {
		for _, cell := range strings.Split(window[i], "|") {
			if n, ok := decodeCell(cell); ok {
				marks = append(marks, n)
				if len(marks) >= want {
					return marks
				}
			}
		}
	}
	return marks
}
