package loan

import (
	"fmt"

	"athenaeum/internal/domain/book"
)

// LoanDetail is one confirmed book-line inside a loan. Details are
// immutable history: they are created at confirmation and never mutated or
// individually removed afterwards.
type LoanDetail struct {
	id         uint
	loanID     uint
	userID     uint
	bookID     uint
	quantity   int
	wasDeleted bool
	book       *book.Book
}

// NewLoanDetail builds a detail from a cart item at confirmation time. The
// owning user is copied from the loan's user, not taken from the caller.
func NewLoanDetail(userID, bookID uint, quantity int) (*LoanDetail, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if bookID == 0 {
		return nil, fmt.Errorf("book ID is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	return &LoanDetail{
		userID:   userID,
		bookID:   bookID,
		quantity: quantity,
	}, nil
}

func ReconstructLoanDetail(id, loanID, userID, bookID uint, quantity int, wasDeleted bool) (*LoanDetail, error) {
	if id == 0 {
		return nil, fmt.Errorf("loan detail ID cannot be zero")
	}
	if loanID == 0 {
		return nil, fmt.Errorf("loan reference is required")
	}

	return &LoanDetail{
		id:         id,
		loanID:     loanID,
		userID:     userID,
		bookID:     bookID,
		quantity:   quantity,
		wasDeleted: wasDeleted,
	}, nil
}

func (ld *LoanDetail) ID() uint { return ld.id }
func (ld *LoanDetail) LoanID() uint { return ld.loanID }
func (ld *LoanDetail) UserID() uint { return ld.userID }
func (ld *LoanDetail) BookID() uint { return ld.bookID }
func (ld *LoanDetail) Quantity() int { return ld.quantity }
func (ld *LoanDetail) WasDeleted() bool { return ld.wasDeleted }

// Book returns the joined catalog record when loaded with its book, nil
// otherwise.
func (ld *LoanDetail) Book() *book.Book { return ld.book }

func (ld *LoanDetail) AttachBook(b *book.Book) {
	ld.book = b
}
