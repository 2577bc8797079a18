package analysis

import (
	"log/slog"
)

// SummaryTotals are the raw sums the repository reads for one year.
type SummaryTotals struct {
	TotalProposed float64
	TotalRealized float64
	TotalRecettes float64
	TotalDepenses float64
}

// CategoryTotals are the raw per-category sums for one year.
type CategoryTotals struct {
	CategoryCode  string
	CategoryLabel string
	Proposed      float64
	Realized      float64
}

type RepositoryAPI interface {
	SummaryTotals(year int) (*SummaryTotals, error)
	CategoryTotals(year int) ([]*CategoryTotals, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Summary computes the year's aggregate figures.
func (s *Service) Summary(year int) (*Summary, error) {
	totals, err := s.repo.SummaryTotals(year)
	if err != nil {
		s.logger.Error("failed to compute budget summary", "year", year, "error", err)
		return nil, err
	}

	summary := &Summary{
		Year:          year,
		TotalProposed: totals.TotalProposed,
		TotalRealized: totals.TotalRealized,
		TotalRecettes: totals.TotalRecettes,
		TotalDepenses: totals.TotalDepenses,
	}
	if totals.TotalProposed != 0 {
		summary.RealizationRate = totals.TotalRealized / totals.TotalProposed * 100
	}
	return summary, nil
}

// Variances computes per-category drift for the year, ordered by code.
func (s *Service) Variances(year int) ([]*Variance, error) {
	rows, err := s.repo.CategoryTotals(year)
	if err != nil {
		s.logger.Error("failed to compute budget variances", "year", year, "error", err)
		return nil, err
	}

	variances := make([]*Variance, 0, len(rows))
	for _, row := range rows {
		v := &Variance{
			CategoryCode:  row.CategoryCode,
			CategoryLabel: row.CategoryLabel,
			Proposed:      row.Proposed,
			Realized:      row.Realized,
			Variance:      row.Realized - row.Proposed,
		}
		if row.Proposed != 0 {
			v.VariancePercent = v.Variance / row.Proposed * 100
		}
		v.Severity = ClassifySeverity(v.VariancePercent)
		variances = append(variances, v)
	}
	return variances, nil
}
