package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of user roles. It is derived once at registration
// time and never changed afterwards.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// AuthUser is a credential record. Username doubles as the primary key and
// must be an email address.
type AuthUser struct {
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Role         Role      `db:"role" json:"role"`
	PhoneNumber  string    `db:"phone_number" json:"phoneNumber"`
	LocationID   string    `db:"location_id" json:"locationId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Role       Role   `json:"role"`
	jwt.RegisteredClaims
}
