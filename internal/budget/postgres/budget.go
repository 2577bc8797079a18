package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal/budget"
)

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) budget.RepositoryAPI {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Create(line *budget.BudgetLine) error {
	return r.db.Create(line).Error
}

func (r *BudgetRepository) GetByID(id int64) (*budget.BudgetLine, error) {
	var line budget.BudgetLine
	err := r.db.
		Preload("User").
		Preload("Category").
		Preload("Validator").
		Where("id = ?", id).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budget.ErrLineNotFound
		}
		return nil, err
	}
	return &line, nil
}

func (r *BudgetRepository) List(filters budget.ListFilters) ([]*budget.BudgetLine, error) {
	query := r.db.
		Preload("User").
		Preload("Category").
		Preload("Validator")

	if filters.Year != nil {
		query = query.Where("year = ?", *filters.Year)
	}
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var lines []*budget.BudgetLine
	err := query.Order("created_at DESC").Find(&lines).Error
	return lines, err
}

func (r *BudgetRepository) Updates(id int64, fields map[string]any) error {
	return r.db.Model(&budget.BudgetLine{}).Where("id = ?", id).Updates(fields).Error
}

func (r *BudgetRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&budget.BudgetLine{}).Error
}

// TransitionStatus applies fields only while the row still holds the
// expected status. Zero rows affected means somebody else moved it first.
func (r *BudgetRepository) TransitionStatus(id int64, from budget.Status, fields map[string]any) (bool, error) {
	result := r.db.Model(&budget.BudgetLine{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
