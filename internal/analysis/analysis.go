package analysis

// Summary aggregates a fiscal year's budget lines. Recettes and depenses
// are split by category type; realization rate is realized over proposed
// in percent, 0 when nothing was proposed.
type Summary struct {
	Year            int     `json:"year"`
	TotalProposed   float64 `json:"total_proposed"`
	TotalRealized   float64 `json:"total_realized"`
	TotalRecettes   float64 `json:"total_recettes"`
	TotalDepenses   float64 `json:"total_depenses"`
	RealizationRate float64 `json:"realization_rate"`
}

// Severity grades how far realization drifted from the proposal.
type Severity string

const (
	SeverityCompliant Severity = "compliant"
	SeverityAttention Severity = "attention"
	SeverityCritical  Severity = "critical"
)

// ClassifySeverity buckets a variance percentage. Within 10 points either
// way is compliant, within 25 needs attention, beyond that is critical.
func ClassifySeverity(variancePercent float64) Severity {
	abs := variancePercent
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs <= 10:
		return SeverityCompliant
	case abs <= 25:
		return SeverityAttention
	default:
		return SeverityCritical
	}
}

// Variance compares proposed and realized amounts for one category.
type Variance struct {
	CategoryCode    string   `json:"category_code"`
	CategoryLabel   string   `json:"category_label"`
	Proposed        float64  `json:"proposed"`
	Realized        float64  `json:"realized"`
	Variance        float64  `json:"variance"`
	VariancePercent float64  `json:"variance_percent"`
	Severity        Severity `json:"severity"`
}
