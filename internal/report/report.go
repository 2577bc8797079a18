package report

import (
	"time"

	"github.com/ucad-dsi/gestion-budget/internal"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Report is the record of a generated export; the file itself lives on
// disk under the configured reports directory.
type Report struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;not null;index"`
	Year      int       `json:"year" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"`
	Filename  string    `json:"filename" gorm:"not null"`
	FilePath  string    `json:"file_path" gorm:"column:file_path;not null"`
	FileSize  *int64    `json:"file_size,omitempty" gorm:"column:file_size"`
	CreatedAt time.Time `json:"created_at"`
}

func (Report) TableName() string {
	return "budget_reports"
}

type GenerateReportDTO struct {
	Year   int    `json:"year"`
	Type   string `json:"type"`
	Format string `json:"format"`
}

func (dto GenerateReportDTO) Validate() error {
	if dto.Year <= 0 {
		return internal.NewValidationFieldError("year", "year is required", internal.ErrCodeInvalidYear)
	}
	if dto.Format != FormatXLSX && dto.Format != FormatCSV {
		return internal.NewValidationFieldError("format", "format must be xlsx or csv", internal.ErrCodeValidationFailed)
	}
	return nil
}

var ErrReportNotFound = internal.NewNotFoundError("report not found", internal.ErrCodeReportNotFound)
