package loan

import (
	"context"
	"time"
)

// Repository is the lending core: cart mutation, cart-to-loan
// confirmation, role-sensitive listing and delivery recording. Operations
// are keyed by the caller's username and resolve it through the identity
// collaborator; an unresolvable user makes mutations silent no-ops and
// read paths return not-found.
//
// Implementations must guarantee storage-level atomicity: concurrent adds
// for the same (user, book) pair must not lose an increment, and
// ConfirmLoan must move the entire cart into exactly one loan or nothing.
type Repository interface {
	// AddItemToCart stages quantity copies of a book in the user's cart,
	// inserting a new line or atomically incrementing the existing one.
	// Missing or soft-deleted users and books are silent no-ops.
	AddItemToCart(ctx context.Context, username string, bookID uint, quantity int) error

	// UpdateCartQuantity applies a signed delta to a cart line. A delta
	// that would take the quantity to zero or below leaves the line
	// unchanged. Missing lines are a no-op.
	UpdateCartQuantity(ctx context.Context, cartItemID uint, delta int) error

	// RemoveCartItem physically deletes a cart line. Missing lines are a
	// no-op.
	RemoveCartItem(ctx context.Context, cartItemID uint) error

	// GetCart returns the user's staged lines with books joined, ordered
	// by book title descending. An unknown user is a not-found error,
	// distinct from an empty cart.
	GetCart(ctx context.Context, username string) ([]*CartItem, error)

	// ConfirmLoan converts every staged line into one new loan and clears
	// the cart, all in one transaction. Returns false without error when
	// the user is unknown or the cart is empty.
	ConfirmLoan(ctx context.Context, username string) (bool, error)

	// ListLoans returns loans visible to the user: employees see every
	// loan (with owners joined), everyone else sees only their own
	// non-deleted loans. Ordered by loan date descending.
	ListLoans(ctx context.Context, username string) ([]*Loan, error)

	// GetByID looks a loan up by primary key, items and books joined.
	GetByID(ctx context.Context, id uint) (*Loan, error)

	// RecordDelivery sets the delivery date on a loan, overwriting any
	// previous value. Missing or soft-deleted loans are a no-op.
	RecordDelivery(ctx context.Context, loanID uint, deliveryDate time.Time) error
}
