package category

import (
	"time"

	"github.com/ucad-dsi/gestion-budget/internal"
)

// Category types follow the UCAD nomenclature: money coming in is a
// recette, money going out (including investments) is a depense.
const (
	TypeRecette = "recette"
	TypeDepense = "depense"
)

// Category is one account of the chart of accounts budget lines are
// classified under.
type Category struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null"`
	Label       string    `json:"label" gorm:"not null"`
	Type        string    `json:"type" gorm:"type:text;not null"`
	ParentCode  *string   `json:"parent_code,omitempty" gorm:"column:parent_code"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "budget_categories"
}

var ErrNotFound = internal.NewNotFoundError("budget category not found", internal.ErrCodeUnknownCategory)
