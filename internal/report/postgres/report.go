package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal/report"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.RepositoryAPI {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Insert(rep *report.Report) error {
	return r.db.Create(rep).Error
}

func (r *ReportRepository) GetByID(id int64) (*report.Report, error) {
	var rep report.Report
	err := r.db.Where("id = ?", id).First(&rep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, report.ErrReportNotFound
		}
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepository) ListForUser(userID int64) ([]*report.Report, error) {
	var reports []*report.Report
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&report.Report{}).Error
}
