package postgres

import (
	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal/history"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) history.RepositoryAPI {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Insert(entry *history.Entry) error {
	return r.db.Create(entry).Error
}

func (r *HistoryRepository) ListForLine(budgetLineID int64) ([]*history.Entry, error) {
	var entries []*history.Entry
	err := r.db.
		Where("budget_line_id = ?", budgetLineID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
