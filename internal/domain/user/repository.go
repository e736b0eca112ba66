package user

import "context"

// Repository is the persistence contract for users. The loan service
// consumes only the name-resolution subset (Resolver); the full interface
// exists for account management.
type Repository interface {
	Resolver

	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Resolver resolves a caller-supplied username to a user record and answers
// role-membership queries. Unknown usernames yield (nil, nil), never an
// error: callers decide whether that is a silent no-op or a not-found.
type Resolver interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	HasRole(ctx context.Context, u *User, role Role) (bool, error)
}
