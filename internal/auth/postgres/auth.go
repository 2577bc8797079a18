package postgres

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal/auth"
)

// Repository implements auth.RepositoryAPI over the users table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentials(email string) (*auth.Credentials, error) {
	var creds auth.Credentials
	row := r.db.Raw(
		`SELECT id, password_hash, is_active FROM users WHERE email = ?`, email,
	).Row()

	if err := row.Scan(&creds.UserID, &creds.PasswordHash, &creds.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &creds, nil
}

func (r *Repository) GetActor(userID int64) (*auth.Actor, error) {
	var actor auth.Actor
	row := r.db.Raw(
		`SELECT id, email, name, role, department FROM users WHERE id = ? AND is_active = true`, userID,
	).Row()

	var department sql.NullString
	var role string
	if err := row.Scan(&actor.ID, &actor.Email, &actor.Name, &role, &department); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	actor.Role = auth.Role(role)
	if department.Valid {
		actor.Department = &department.String
	}
	return &actor, nil
}
