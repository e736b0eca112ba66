package user

import (
	"fmt"
	"strings"
	"time"
)

// Role is the single role a user holds. Readers browse and borrow,
// employees manage the catalog and deliveries, admins confirm accounts.
type Role string

const (
	RoleReader   Role = "reader"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleReader, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	id                 uint
	username           string
	email              string
	firstName          string
	lastName           string
	phone              string
	imageURL           string
	passwordHash       string
	role               Role
	mustChangePassword bool
	adminConfirmed     bool
	wasDeleted         bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewUser(username, email, firstName, lastName, phone string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		username:           username,
		email:              email,
		firstName:          firstName,
		lastName:           lastName,
		phone:              phone,
		role:               role,
		mustChangePassword: true,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, email, firstName, lastName, phone, imageURL, passwordHash string,
	role Role,
	mustChangePassword, adminConfirmed, wasDeleted bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                 id,
		username:           username,
		email:              email,
		firstName:          firstName,
		lastName:           lastName,
		phone:              phone,
		imageURL:           imageURL,
		passwordHash:       passwordHash,
		role:               role,
		mustChangePassword: mustChangePassword,
		adminConfirmed:     adminConfirmed,
		wasDeleted:         wasDeleted,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (u *User) ID() uint { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) Email() string { return u.email }
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string { return u.lastName }
func (u *User) Phone() string { return u.phone }
func (u *User) ImageURL() string { return u.imageURL }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role { return u.role }
func (u *User) AdminConfirmed() bool { return u.adminConfirmed }
func (u *User) WasDeleted() bool { return u.wasDeleted }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) MustChangePassword() bool { return u.mustChangePassword }

// FullName flattens the display name, tolerating missing parts.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.firstName + " " + u.lastName)
	if name == "" {
		return u.username
	}
	return name
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ClearMustChangePassword() {
	u.mustChangePassword = false
	u.updatedAt = time.Now().UTC()
}

// Confirm marks the account as approved by an administrator. New accounts
// cannot log in until confirmed.
func (u *User) Confirm() {
	u.adminConfirmed = true
	u.updatedAt = time.Now().UTC()
}

func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) MarkDeleted() {
	u.wasDeleted = true
	u.updatedAt = time.Now().UTC()
}
