package loan

import (
	"fmt"

	"athenaeum/internal/domain/book"
)

// CartItem is a staged loan line: one (user, book) pair with a quantity,
// accumulated before a loan is confirmed. At most one non-deleted item
// exists per pair; adding the same book again increments the quantity.
//
// Cart items are the only records in the system that are physically
// deleted: the cart is ephemeral staging state, not history.
type CartItem struct {
	id         uint
	userID     uint
	bookID     uint
	quantity   int
	wasDeleted bool
	book       *book.Book
}

func NewCartItem(userID, bookID uint, quantity int) (*CartItem, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if bookID == 0 {
		return nil, fmt.Errorf("book ID is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	return &CartItem{
		userID:   userID,
		bookID:   bookID,
		quantity: quantity,
	}, nil
}

func ReconstructCartItem(id, userID, bookID uint, quantity int, wasDeleted bool) (*CartItem, error) {
	if id == 0 {
		return nil, fmt.Errorf("cart item ID cannot be zero")
	}
	if userID == 0 || bookID == 0 {
		return nil, fmt.Errorf("cart item references are required")
	}

	return &CartItem{
		id:         id,
		userID:     userID,
		bookID:     bookID,
		quantity:   quantity,
		wasDeleted: wasDeleted,
	}, nil
}

func (ci *CartItem) ID() uint { return ci.id }
func (ci *CartItem) UserID() uint { return ci.userID }
func (ci *CartItem) BookID() uint { return ci.bookID }
func (ci *CartItem) Quantity() int { return ci.quantity }
func (ci *CartItem) WasDeleted() bool { return ci.wasDeleted }

// Book returns the joined catalog record when the item was loaded with its
// book, nil otherwise.
func (ci *CartItem) Book() *book.Book { return ci.book }

func (ci *CartItem) SetID(id uint) error {
	if ci.id != 0 {
		return fmt.Errorf("cart item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("cart item ID cannot be zero")
	}
	ci.id = id
	return nil
}

func (ci *CartItem) AttachBook(b *book.Book) {
	ci.book = b
}

// Adjust applies a signed quantity delta. A delta that would take the
// quantity to zero or below is rejected; removing a line entirely is an
// explicit delete, never a decrement.
func (ci *CartItem) Adjust(delta int) error {
	next := ci.quantity + delta
	if next <= 0 {
		return fmt.Errorf("quantity must stay above zero")
	}
	ci.quantity = next
	return nil
}
