package marksheet

import "errors"

// Result status tokens as they appear verbatim in gazette marksheets.
const (
	ResultSuccessful   = "Successful"
	ResultUnsuccessful = "Unsuccessful"
)

// UnknownPaperName is the sentinel resolved for paper codes that have no
// entry in the code dictionary. Lookups never fail.
const UnknownPaperName = "Unknown"

var (
	// ErrSchemaUndetected indicates the consolidated marksheet family could
	// not locate its structural anchor, so per-subject maxima are unknown
	// and percentage computation is impossible.
	ErrSchemaUndetected = errors.New("schema undetected: no subject structure anchor found")

	// ErrNoRecords indicates a document whose schema was detected but which
	// yielded zero accepted student records.
	ErrNoRecords = errors.New("no records found")
)

// Document is the text recovered from one marksheet PDF. Pages preserve the
// adapter's reading order; Text is the newline join of Pages.
type Document struct {
	Pages []string
	Text  string
}

// NewDocument builds a Document from ordered per-page text.
func NewDocument(pages []string) Document {
	total := 0
	for _, p := range pages {
		total += len(p) + 1
	}
	buf := make([]byte, 0, total)
	for i, p := range pages {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, p...)
	}
	return Document{Pages: pages, Text: string(buf)}
}

// GradeBand maps an inclusive marks range to a grade token. Bands are built
// once per document from the grading legend and checked in declared order.
type GradeBand struct {
	Low   float64
	High  float64
	Grade string
}

// CodeNameMap resolves a subject/paper code to its display name.
type CodeNameMap map[string]string

// NameFor returns the display name for a code, or UnknownPaperName when the
// code was never declared in the scanned pages.
func (m CodeNameMap) NameFor(code string) string {
	if name, ok := m[code]; ok {
		return name
	}
	return UnknownPaperName
}

// SubjectStructure is the ordered code-to-maximum-marks table of the
// consolidated marksheet family. Order drives positional assignment of
// extracted marks, so it is preserved separately from the lookup map.
type SubjectStructure struct {
	codes []string
	max   map[string]int
}

// Add records a subject and its maximum marks. The first occurrence of a
// code wins; later duplicates are ignored.
func (s *SubjectStructure) Add(code string, maxMarks int) {
	if s.max == nil {
		s.max = make(map[string]int)
	}
	if _, seen := s.max[code]; seen {
		return
	}
	s.codes = append(s.codes, code)
	s.max[code] = maxMarks
}

// Codes returns the subject codes in first-seen order.
func (s *SubjectStructure) Codes() []string {
	return s.codes
}

// MaxFor returns the maximum marks for a code.
func (s *SubjectStructure) MaxFor(code string) int {
	return s.max[code]
}

// Len reports the number of subjects, which is also the number of marks a
// student block must yield to be accepted.
func (s *SubjectStructure) Len() int {
	return len(s.codes)
}

// TotalMax returns the sum of all subject maxima.
func (s *SubjectStructure) TotalMax() int {
	total := 0
	for _, c := range s.codes {
		total += s.max[c]
	}
	return total
}

// PaperResult is one subject outcome inside a student record.
type PaperResult struct {
	Code  string `json:"paper_code"`
	Name  string `json:"paper_name"`
	Total int    `json:"total"`
	Grade string `json:"grade,omitempty"`
}

// StudentRecord is one decoded student block from the gazette family.
// SGPI is empty unless the result is Successful and the block carried the
// trailing aggregate marker.
type StudentRecord struct {
	SeatNo string        `json:"seat_no"`
	Name   string        `json:"name"`
	Result string        `json:"result"`
	SGPI   string        `json:"sgpi,omitempty"`
	Papers []PaperResult `json:"papers"`
}

// PercentageRecord is the consolidated family's per-student output. Marks
// detail is deliberately not retained past aggregation.
type PercentageRecord struct {
	Name       string  `json:"Name"`
	Percentage float64 `json:"Percentage"`
}

// Extraction is the outcome of running one RecordStrategy over a document.
// Exactly one of Students or Percentages is populated depending on the
// marksheet family; Subjects accompanies Percentages.
type Extraction struct {
	Students    []StudentRecord
	Percentages []PercentageRecord
	Subjects    *SubjectStructure
}

// RecordStrategy decodes one marksheet family from recovered document text.
type RecordStrategy interface {
	// Family names the marksheet layout the strategy understands.
	Family() string

	// Extract runs the full pipeline for this family over the document.
	Extract(doc Document) (*Extraction, error)
}
