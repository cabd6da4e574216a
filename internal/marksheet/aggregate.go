package marksheet

import "math"

// buildPercentages reduces accepted consolidated students to per-student
// percentages against the structure's total maxima. Marks detail is dropped
// here deliberately; the consolidated output carries only name and
// percentage.
func buildPercentages(students []consolidatedStudent, structure *SubjectStructure) []PercentageRecord {
	totalMax := structure.TotalMax()
	if totalMax == 0 {
		return nil
	}

	records := make([]PercentageRecord, 0, len(students))
	for _, st := range students {
		sum := 0
		for _, m := range st.marks {
			sum += m
		}
		records = append(records, PercentageRecord{
			Name:       st.name,
			Percentage: round2(float64(sum) / float64(totalMax) * 100),
		})
	}
	return records
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
