package marksheet

import (
	"regexp"
	"strconv"
	"strings"
)

var marksRangePattern = regexp.MustCompile(`(\d+\.?\d*)\s*to\s*(\d+\.?\d*)`)

// ParseGradingScale scans the document text for the grading legend: a line
// starting with "MARKS" listing numeric ranges and a line starting with
// "GRADE" (but not "GRADE POINT") listing grade tokens after a colon. Ranges
// and grades are paired positionally in declared order.
//
// A missing legend is a degraded mode, not an error: an empty band list is
// returned and every later grade lookup simply yields no match.
func ParseGradingScale(text string) []GradeBand {
	var marksLine, gradeLine string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "MARKS"):
			marksLine = line
		case strings.HasPrefix(trimmed, "GRADE") && !strings.HasPrefix(trimmed, "GRADE POINT"):
			gradeLine = line
		}
	}

	if marksLine == "" || gradeLine == "" {
		return nil
	}

	ranges := marksRangePattern.FindAllStringSubmatch(marksLine, -1)

	_, after, found := strings.Cut(gradeLine, ":")
	if !found {
		return nil
	}
	grades := strings.Fields(after)

	var bands []GradeBand
	for i, r := range ranges {
		if i >= len(grades) {
			break
		}
		low, err := strconv.ParseFloat(r[1], 64)
		if err != nil {
			continue
		}
		high, err := strconv.ParseFloat(r[2], 64)
		if err != nil {
			continue
		}
		bands = append(bands, GradeBand{Low: low, High: high, Grade: grades[i]})
	}

	return bands
}

// GradeFor returns the grade of the first band, in declared order, whose
// inclusive range contains total. The second return is false when no band
// matches, including when the legend was never found.
func GradeFor(bands []GradeBand, total float64) (string, bool) {
	for _, b := range bands {
		if b.Low <= total && total <= b.High {
			return b.Grade, true
		}
	}
	return "", false
}
