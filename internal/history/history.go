package history

import "time"

// Actions recorded against a budget line. The log is append only; entries
// are never updated or removed.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionSubmitted = "submitted"
	ActionValidated = "validated"
	ActionRejected  = "rejected"
)

// Entry is one audit record. Old and new values are opaque JSON snapshots
// of the line around the change; readers render them, they are never
// interpreted server-side.
type Entry struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	BudgetLineID int64     `json:"budget_line_id" gorm:"column:budget_line_id;index;not null"`
	Action       string    `json:"action" gorm:"not null"`
	OldValues    *string   `json:"old_values,omitempty" gorm:"column:old_values"`
	NewValues    *string   `json:"new_values,omitempty" gorm:"column:new_values"`
	UserID       int64     `json:"user_id" gorm:"column:user_id;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Entry) TableName() string {
	return "budget_history"
}
