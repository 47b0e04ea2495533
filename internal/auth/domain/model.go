// Package domain contains core types for the auth service.
package domain

// Roles a user account can hold. Role is fixed at signup.
const (
	RoleCustomer = "customer"
	RoleArtisan  = "artisan"
)

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleArtisan
}

// User represents a marketplace account, either a customer or an artisan.
type User struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:text;not null" json:"name"`
	Email        string `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role         string `gorm:"type:text;not null" json:"role"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
