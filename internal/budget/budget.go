package budget

import (
	"time"

	"github.com/ucad-dsi/gestion-budget/internal"
	"github.com/ucad-dsi/gestion-budget/internal/category"
	"github.com/ucad-dsi/gestion-budget/internal/user"
)

// Status is the approval state of a budget line.
//
//	draft -> pending -> validated
//	               \--> rejected
//
// Consolidated is recognized for reading older data but nothing
// transitions into it anymore.
type Status string

const (
	StatusDraft        Status = "draft"
	StatusPending      Status = "pending"
	StatusValidated    Status = "validated"
	StatusRejected     Status = "rejected"
	StatusConsolidated Status = "consolidated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusValidated, StatusRejected, StatusConsolidated:
		return true
	}
	return false
}

// BudgetLine is one proposal row of a departmental budget for a fiscal
// year. Amounts are stored as numeric(15,2) in FCFA.
type BudgetLine struct {
	ID              int64      `json:"id" gorm:"primaryKey"`
	UserID          int64      `json:"user_id" gorm:"column:user_id;not null;index"`
	CategoryID      int64      `json:"category_id" gorm:"column:category_id;not null;index"`
	Year            int        `json:"year" gorm:"not null;index"`
	ProposedAmount  float64    `json:"proposed_amount" gorm:"column:proposed_amount;type:numeric(15,2);not null"`
	RealizedAmount  *float64   `json:"realized_amount,omitempty" gorm:"column:realized_amount;type:numeric(15,2)"`
	Description     *string    `json:"description,omitempty"`
	Status          Status     `json:"status" gorm:"type:text;not null;default:'draft'"`
	ValidatedBy     *int64     `json:"validated_by,omitempty" gorm:"column:validated_by"`
	ValidatedAt     *time.Time `json:"validated_at,omitempty" gorm:"column:validated_at"`
	RejectionReason *string    `json:"rejection_reason,omitempty" gorm:"column:rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	User      *user.User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Category  *category.Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Validator *user.User         `json:"validator,omitempty" gorm:"foreignKey:ValidatedBy"`
}

func (BudgetLine) TableName() string {
	return "budget_lines"
}

// CanSubmit reports whether the line may move to pending.
func (b *BudgetLine) CanSubmit() bool {
	return b.Status == StatusDraft
}

// CanModerate reports whether the line may be validated or rejected.
func (b *BudgetLine) CanModerate() bool {
	return b.Status == StatusPending
}

var (
	ErrLineNotFound = internal.NewNotFoundError("budget line not found", internal.ErrCodeLineNotFound)
	ErrNotOwner     = internal.NewForbiddenError("budget line belongs to another user", internal.ErrCodeAccessDenied)
)
