package user

import (
	"time"

	"github.com/ucad-dsi/gestion-budget/internal"
	"github.com/ucad-dsi/gestion-budget/internal/auth"
)

// User is an account able to log in and own budget lines. Accounts are
// provisioned by administrators (or the seeder), never self-registered.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Role         auth.Role `json:"role" gorm:"type:text;not null;default:'user'"`
	Department   *string   `json:"department,omitempty"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) ToActor() *auth.Actor {
	return &auth.Actor{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
	}
}

var ErrNotFound = internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
