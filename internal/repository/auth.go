package repository

import (
	"database/sql"
	"errors"

	"schoolbackend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// AuthUserRepository is the credential store. Records are created once at
// registration and read-only afterwards.
type AuthUserRepository interface {
	GetByUsername(username string) (*models.AuthUser, error)
	Create(user *models.AuthUser) error
}

type authUserRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAuthUserRepository(db *sqlx.DB, logger *zap.Logger) AuthUserRepository {
	return &authUserRepository{db: db, logger: logger}
}

// GetByUsername returns (nil, nil) when no record exists.
func (r *authUserRepository) GetByUsername(username string) (*models.AuthUser, error) {
	var user models.AuthUser
	query := `SELECT username, password_hash, first_name, last_name, role, phone_number, location_id, created_at FROM auth_users WHERE username = $1`
	err := r.db.Get(&user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *authUserRepository) Create(user *models.AuthUser) error {
	query := `INSERT INTO auth_users (username, password_hash, first_name, last_name, role, phone_number, location_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	return r.db.QueryRowx(query, user.Username, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.PhoneNumber, user.LocationID).Scan(&user.CreatedAt)
}
