package domain

import (
	"context"
	"time"
)

// User represents a user account (domain model)
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"-" gorm:"not null"` // Never expose the hash in JSON
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// Profile is the sanitized representation returned by account-mutating
// actions. It is an explicit whitelist: no password hash, no active flag.
type Profile struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile projects the user onto its sanitized representation.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Ordering is the allow-listed sort directive for user listings. Anything
// outside the enumeration falls back to OrderingIDAsc so clients can never
// smuggle arbitrary column names into a query.
type Ordering string

const (
	OrderingIDAsc       Ordering = "pk"
	OrderingIDDesc      Ordering = "-pk"
	OrderingUsernameAsc Ordering = "username"
)

// NormalizeOrdering maps a raw query value onto the allow-list,
// falling back to ascending-by-identifier.
func NormalizeOrdering(raw string) Ordering {
	switch Ordering(raw) {
	case OrderingIDDesc:
		return OrderingIDDesc
	case OrderingUsernameAsc:
		return OrderingUsernameAsc
	default:
		return OrderingIDAsc
	}
}

// UserFilter narrows a user listing. Zero-valued members are skipped, so an
// empty filter returns the whole collection in default order.
type UserFilter struct {
	ID       *uint
	Username string // case-insensitive substring
	Email    string // exact
	IsStaff  *bool
	Search   string // case-insensitive OR over username, first name, last name
	Ordering Ordering
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
