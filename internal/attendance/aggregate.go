package attendance

import "math"

// Band is the alert classification derived from a percentage.
type Band string

const (
	BandExcellent Band = "Excellent"
	BandGood      Band = "Good"
	BandWarning   Band = "Warning"
	BandCritical  Band = "Critical"
)

// BandFor classifies a percentage. Boundaries are inclusive: exactly 85 is
// Excellent, 75 is Good, 65 is Warning.
func BandFor(pct float64) Band {
	switch {
	case pct >= 85:
		return BandExcellent
	case pct >= 75:
		return BandGood
	case pct >= 65:
		return BandWarning
	default:
		return BandCritical
	}
}

// Summarize reduces a student's records to the overall aggregate. Empty input
// yields the zero summary.
func Summarize(records []Record) Summary {
	s := Summary{TotalClasses: len(records)}
	for _, r := range records {
		if r.Present {
			s.PresentClasses++
		}
	}
	s.AbsentClasses = s.TotalClasses - s.PresentClasses
	if s.TotalClasses > 0 {
		s.Percentage = roundPercent(float64(s.PresentClasses) / float64(s.TotalClasses) * 100)
	}
	return s
}

// SummarizeBySubject reduces records to the overall aggregate plus one row
// per subject, in first-appearance order. Records without joined subject
// metadata count toward the overall totals only.
func SummarizeBySubject(records []Record) (Summary, []SubjectSummary) {
	overall := Summarize(records)

	index := make(map[string]int)
	var subjects []SubjectSummary
	for _, r := range records {
		if r.Subject == nil || r.Subject.ID == "" {
			continue
		}
		i, ok := index[r.Subject.ID]
		if !ok {
			i = len(subjects)
			index[r.Subject.ID] = i
			subjects = append(subjects, SubjectSummary{
				SubjectID:   r.Subject.ID,
				SubjectName: r.Subject.Name,
				SubjectCode: r.Subject.Code,
			})
		}
		subjects[i].Total++
		if r.Present {
			subjects[i].Present++
		}
	}
	for i := range subjects {
		subjects[i].Absent = subjects[i].Total - subjects[i].Present
		if subjects[i].Total > 0 {
			subjects[i].Percentage = roundFraction(float64(subjects[i].Present) / float64(subjects[i].Total))
		}
	}
	return overall, subjects
}

// roundPercent rounds an already-scaled percentage to 2 decimals.
func roundPercent(pct float64) float64 {
	return math.Round(pct*100) / 100
}

// roundFraction scales a 0..1 fraction straight to a 2-decimal percentage.
// Downstream alert thresholds are banded on these exact values, so the two
// rounding paths are kept as written even though they agree at 2 decimals.
func roundFraction(frac float64) float64 {
	return math.Round(frac*10000) / 100
}
