package loan

import (
	"fmt"
	"time"

	"athenaeum/internal/domain/user"
)

// DefaultGracePeriodDays is the lending grace period: the due date is fixed
// at loanDate + grace period when the loan is created and never recomputed.
const DefaultGracePeriodDays = 15

// DefaultPenaltyPerDay is the per-line overdue penalty in EUR per day.
const DefaultPenaltyPerDay = 2.0

// Loan is a confirmed, durable borrowing transaction. Only the delivery
// date is mutable after creation; everything else, including the detail
// lines, is frozen history.
type Loan struct {
	id           uint
	userID       uint
	loanDate     time.Time
	dueDate      time.Time
	deliveryDate *time.Time
	wasDeleted   bool
	items        []*LoanDetail
	user         *user.User
}

// NewLoan creates a loan at confirmation time. now must be UTC (callers
// inject a clock); the due date law dueDate == loanDate + gracePeriodDays
// holds for every loan ever created.
func NewLoan(userID uint, items []*LoanDetail, now time.Time, gracePeriodDays int) (*Loan, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("a loan requires at least one item")
	}
	if gracePeriodDays <= 0 {
		gracePeriodDays = DefaultGracePeriodDays
	}

	loanDate := now.UTC()
	return &Loan{
		userID:   userID,
		loanDate: loanDate,
		dueDate:  loanDate.AddDate(0, 0, gracePeriodDays),
		items:    items,
	}, nil
}

func ReconstructLoan(
	id uint,
	userID uint,
	loanDate, dueDate time.Time,
	deliveryDate *time.Time,
	wasDeleted bool,
	items []*LoanDetail,
) (*Loan, error) {
	if id == 0 {
		return nil, fmt.Errorf("loan ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user reference is required")
	}

	return &Loan{
		id:           id,
		userID:       userID,
		loanDate:     loanDate,
		dueDate:      dueDate,
		deliveryDate: deliveryDate,
		wasDeleted:   wasDeleted,
		items:        items,
	}, nil
}

func (l *Loan) ID() uint { return l.id }
func (l *Loan) UserID() uint { return l.userID }
func (l *Loan) LoanDate() time.Time { return l.loanDate }
func (l *Loan) DueDate() time.Time { return l.dueDate }
func (l *Loan) DeliveryDate() *time.Time { return l.deliveryDate }
func (l *Loan) WasDeleted() bool { return l.wasDeleted }

// Items returns the detail lines in storage order.
func (l *Loan) Items() []*LoanDetail {
	itemsCopy := make([]*LoanDetail, len(l.items))
	copy(itemsCopy, l.items)
	return itemsCopy
}

// User returns the joined owner when the loan was loaded with its user,
// nil otherwise.
func (l *Loan) User() *user.User { return l.user }

func (l *Loan) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("loan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("loan ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *Loan) AttachUser(u *user.User) {
	l.user = u
}

// RecordDelivery sets the delivery (return) date. Calling it again simply
// overwrites the previous value; delivery is idempotent by overwrite, not a
// one-shot transition.
func (l *Loan) RecordDelivery(date time.Time) {
	d := date.UTC()
	l.deliveryDate = &d
}

func (l *Loan) IsDelivered() bool {
	return l.deliveryDate != nil
}

// Quantity is the total number of copies across all detail lines.
func (l *Loan) Quantity() int {
	total := 0
	for _, item := range l.items {
		total += item.Quantity()
	}
	return total
}

// DaysOverdue is how many whole days past the due date the loan is at the
// given instant, zero when not yet due. Computed on read, never stored.
func (l *Loan) DaysOverdue(now time.Time) int {
	days := int(now.UTC().Sub(l.dueDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// PenaltyPrice is the accumulated overdue penalty across all lines at the
// given instant: each line accrues penaltyPerDay for every day overdue.
func (l *Loan) PenaltyPrice(now time.Time, penaltyPerDay float64) float64 {
	if penaltyPerDay <= 0 {
		penaltyPerDay = DefaultPenaltyPerDay
	}
	return float64(len(l.items)) * penaltyPerDay * float64(l.DaysOverdue(now))
}
