package marksheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gazetteBands(t *testing.T) []GradeBand {
	t.Helper()
	bands := ParseGradingScale(legendText)
	require.NotEmpty(t, bands)
	return bands
}

func TestGazetteParseChunkThreePapers(t *testing.T) {
	chunk := "\n1234567 JOHN DOE  |ABC101 |DEF202 |GHI303 | Successful\n" +
		"| 45 | 52 | 61 |\n" +
		"7.54 --\n"

	names := CodeNameMap{"ABC101": "Mathematics", "DEF202": "Physics"}

	rec, ok := GazetteStrategy{}.ParseChunk(chunk, gazetteBands(t), names)
	require.True(t, ok)

	assert.Equal(t, "1234567", rec.SeatNo)
	assert.Equal(t, "JOHN DOE", rec.Name)
	assert.Equal(t, ResultSuccessful, rec.Result)
	assert.Equal(t, "7.54", rec.SGPI)

	require.Len(t, rec.Papers, 3)
	assert.Equal(t, PaperResult{Code: "ABC101", Name: "Mathematics", Total: 45, Grade: "C"}, rec.Papers[0])
	assert.Equal(t, PaperResult{Code: "DEF202", Name: "Physics", Total: 52, Grade: "B"}, rec.Papers[1])
	// Undeclared code resolves to the sentinel name.
	assert.Equal(t, PaperResult{Code: "GHI303", Name: UnknownPaperName, Total: 61, Grade: "A"}, rec.Papers[2])
}

func TestGazetteParseChunkUnsuccessfulHasNoSGPI(t *testing.T) {
	// The trailing decimal marker is present but must be ignored for an
	// Unsuccessful record.
	chunk := "\n1234567 JOHN DOE  |ABC101 | Unsuccessful\n" +
		"| 12 |\n" +
		"3.21 --\n"

	rec, ok := GazetteStrategy{}.ParseChunk(chunk, gazetteBands(t), nil)
	require.True(t, ok)
	assert.Equal(t, ResultUnsuccessful, rec.Result)
	assert.Empty(t, rec.SGPI)
}

func TestGazetteParseChunkSecondCodeTable(t *testing.T) {
	chunk := "\n1234567 JOHN DOE  |ABC101 | Successful\n" +
		"| 45 |\n" +
		"(2)Internal |DEF202 |GHI303 |\n" +
		"| 18 | 19 |\n"

	rec, ok := GazetteStrategy{}.ParseChunk(chunk, gazetteBands(t), nil)
	require.True(t, ok)

	require.Len(t, rec.Papers, 3)
	assert.Equal(t, "ABC101", rec.Papers[0].Code)
	assert.Equal(t, 45, rec.Papers[0].Total)
	assert.Equal(t, "DEF202", rec.Papers[1].Code)
	assert.Equal(t, 18, rec.Papers[1].Total)
	assert.Equal(t, "GHI303", rec.Papers[2].Code)
	assert.Equal(t, 19, rec.Papers[2].Total)
}

func TestGazetteParseChunkMismatchedPairsAreTruncated(t *testing.T) {
	// Three codes but only two marks: the extra code is silently dropped,
	// never an error.
	chunk := "\n1234567 JOHN DOE  |ABC101 |DEF202 |GHI303 | Successful\n" +
		"| 45 | 52 |\n"

	rec, ok := GazetteStrategy{}.ParseChunk(chunk, gazetteBands(t), nil)
	require.True(t, ok)
	assert.Len(t, rec.Papers, 2)
}

func TestGazetteParseChunkRejectsNonRecords(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
	}{
		{"empty chunk", "\n   \n"},
		{"page footer", "\nPage 4 of 12 / RESULT GAZETTE\n"},
		{"missing result token", "\n1234567 JOHN DOE  |ABC101 |\n| 45 |\n"},
		{"short seat number", "\n123456 JOHN DOE  |ABC101 | Successful\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := GazetteStrategy{}.ParseChunk(tt.chunk, nil, nil)
			assert.False(t, ok)
		})
	}
}

func TestGazetteExtract(t *testing.T) {
	doc := NewDocument([]string{
		"ABC101 - Mathematics:\n" + legendText,
		"1234567 JOHN DOE  |ABC101 | Successful\n| 45 |\n6.10 --\n" +
			"2345678 JANE ROE  |ABC101 | Unsuccessful\n| 12 |\n",
	})

	extraction, err := GazetteStrategy{}.Extract(doc)
	require.NoError(t, err)
	require.Len(t, extraction.Students, 2)

	assert.Equal(t, "1234567", extraction.Students[0].SeatNo)
	assert.Equal(t, "6.10", extraction.Students[0].SGPI)
	assert.Equal(t, "Mathematics", extraction.Students[0].Papers[0].Name)

	assert.Equal(t, "2345678", extraction.Students[1].SeatNo)
	assert.Empty(t, extraction.Students[1].SGPI)
}

func TestGazetteExtractEmptyDocument(t *testing.T) {
	extraction, err := GazetteStrategy{}.Extract(NewDocument([]string{""}))
	require.NoError(t, err)
	assert.Empty(t, extraction.Students)
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"1234567 JOHN DOE  |ABC101 | Successful", lineHeader},
		{"(2)Internal marks", lineCodeTable},
		{"|DEF202 |GHI303 |", lineCodeTable},
		{"| 45 | 52 |", lineUnrecognized},
		{"Page 4 of 12", lineUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyLine(tt.line))
		})
	}
}

func TestTrimmedLines(t *testing.T) {
	lines := trimmedLines("  a  \n\n \t\nb\n")
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestFindSGPITakesLastMatch(t *testing.T) {
	lines := []string{"2.00 -- early", "junk", "7.54 -- late"}
	assert.Equal(t, "7.54", findSGPI(lines))
	assert.Equal(t, "", findSGPI([]string{"no marker", "45 --", "7 --"}))
}

func TestRowMarksTakesLastEmbeddedInteger(t *testing.T) {
	marks := rowMarks("|30E 15 45 |28E 24 52 |")
	assert.Equal(t, []int{45, 52}, marks)
	assert.Empty(t, rowMarks("no pipes at all"))
	assert.Empty(t, rowMarks("| -- | AB |"))
}

func TestGazetteExtractIgnoresPreamble(t *testing.T) {
	text := "RESULT GAZETTE\nsome preamble\n1234567 JOHN DOE  |ABC101 | Successful\n| 45 |\n"
	extraction, err := GazetteStrategy{}.Extract(NewDocument([]string{text}))
	require.NoError(t, err)
	require.Len(t, extraction.Students, 1)
}
