package postgres

import (
	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal/analysis"
)

type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) analysis.RepositoryAPI {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) SummaryTotals(year int) (*analysis.SummaryTotals, error) {
	var totals analysis.SummaryTotals
	err := r.db.Raw(`
		SELECT
			COALESCE(SUM(bl.proposed_amount), 0) AS total_proposed,
			COALESCE(SUM(bl.realized_amount), 0) AS total_realized,
			COALESCE(SUM(CASE WHEN bc.type = 'recette' THEN bl.proposed_amount ELSE 0 END), 0) AS total_recettes,
			COALESCE(SUM(CASE WHEN bc.type = 'depense' THEN bl.proposed_amount ELSE 0 END), 0) AS total_depenses
		FROM budget_lines bl
		LEFT JOIN budget_categories bc ON bl.category_id = bc.id
		WHERE bl.year = ?`, year).
		Row().
		Scan(&totals.TotalProposed, &totals.TotalRealized, &totals.TotalRecettes, &totals.TotalDepenses)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *AnalysisRepository) CategoryTotals(year int) ([]*analysis.CategoryTotals, error) {
	rows, err := r.db.Raw(`
		SELECT
			bc.code,
			bc.label,
			COALESCE(SUM(bl.proposed_amount), 0) AS proposed,
			COALESCE(SUM(bl.realized_amount), 0) AS realized
		FROM budget_lines bl
		JOIN budget_categories bc ON bl.category_id = bc.id
		WHERE bl.year = ?
		GROUP BY bc.code, bc.label
		ORDER BY bc.code ASC`, year).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*analysis.CategoryTotals
	for rows.Next() {
		var row analysis.CategoryTotals
		if err := rows.Scan(&row.CategoryCode, &row.CategoryLabel, &row.Proposed, &row.Realized); err != nil {
			return nil, err
		}
		totals = append(totals, &row)
	}
	return totals, rows.Err()
}
