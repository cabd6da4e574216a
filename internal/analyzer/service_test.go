package analyzer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marklytic/marksheet-analyzer/internal/export"
	"github.com/marklytic/marksheet-analyzer/internal/marksheet"
)

const gazetteFixture = `RESULT GAZETTE
ABC101 - Mathematics:
MARKS :  70 to 100  40 to 69.99  0 to 39.99
GRADE : O P F
1234567 JOHN DOE  |ABC101 | Successful
| 45 |
6.10 --
2345678 JANE ROE  |ABC101 | Unsuccessful
| 12 |
`

const consolidatedFixture = `UNIVERSITY OF MUMBAI
ABC101 – Mathematics : Max 100/0
DEF202 – Physics : Max 50/0
2345678 / JANE ROE | ABC101 45C 80 | -- DEF202 40 |
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := export.NewArtifactStore(t.TempDir())
	require.NoError(t, err)
	return NewService(1024*1024, store)
}

func TestAnalyzeDocumentGazette(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.AnalyzeDocument(marksheet.NewDocument([]string{gazetteFixture}), "gazette-test")
	require.NoError(t, err)

	assert.Equal(t, "gazette", analysis.Family)
	require.Len(t, analysis.Records, 2)
	assert.Empty(t, analysis.Percentages)

	assert.Equal(t, "1234567", analysis.Records[0].SeatNo)
	assert.Equal(t, "6.10", analysis.Records[0].SGPI)
	assert.Equal(t, "P", analysis.Records[0].Papers[0].Grade)
	assert.Empty(t, analysis.Records[1].SGPI)

	// Both artifacts are written next to each other under the shared stem.
	for _, path := range []string{analysis.JSONPath, analysis.WorkbookPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("artifact %s not written: %v", path, err)
		}
	}

	records, err := export.ReadRecordsJSON(analysis.JSONPath)
	require.NoError(t, err)
	assert.Equal(t, analysis.Records, records)
}

func TestAnalyzeDocumentConsolidated(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.AnalyzeDocument(marksheet.NewDocument([]string{consolidatedFixture}), "consolidated-test")
	require.NoError(t, err)

	assert.Equal(t, "consolidated", analysis.Family)
	assert.Empty(t, analysis.Records)
	require.Len(t, analysis.Percentages, 1)
	assert.Equal(t, 80.0, analysis.Percentages[0].Percentage)

	if _, err := os.Stat(analysis.WorkbookPath); err != nil {
		t.Errorf("workbook artifact not written: %v", err)
	}
}

func TestAnalyzeDocumentConsolidatedNoRecords(t *testing.T) {
	svc := newTestService(t)

	// Schema detected but no student rows: a named failure, not empty output.
	doc := marksheet.NewDocument([]string{"UNIVERSITY OF MUMBAI\nABC101 – Mathematics : Max 100/0\n"})
	_, err := svc.AnalyzeDocument(doc, "empty-test")
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestAnalyzeDocumentGazetteWithoutStudents(t *testing.T) {
	svc := newTestService(t)

	// The gazette family tolerates documents with zero records; they are
	// valid, just empty.
	analysis, err := svc.AnalyzeDocument(marksheet.NewDocument([]string{"just some text\n"}), "no-students")
	require.NoError(t, err)
	assert.Equal(t, "gazette", analysis.Family)
	assert.Empty(t, analysis.Records)
}

func TestAnalyzeFileMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AnalyzeFile("/does/not/exist.pdf", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid upload")
}

func TestAnalyzeUploadRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AnalyzeUpload(strings.NewReader("not a pdf at all"))
	require.Error(t, err)
}

func TestDetectStrategy(t *testing.T) {
	gazette := marksheet.DetectStrategy(marksheet.NewDocument([]string{gazetteFixture}))
	assert.Equal(t, "gazette", gazette.Family())

	consolidated := marksheet.DetectStrategy(marksheet.NewDocument([]string{consolidatedFixture}))
	assert.Equal(t, "consolidated", consolidated.Family())
}
