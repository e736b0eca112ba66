package usecases

import (
	"time"

	"athenaeum/internal/domain/loan"
)

// CartItemDTO is a staged cart line with its book joined for display.
type CartItemDTO struct {
	ID         uint   `json:"id"`
	BookID     uint   `json:"book_id"`
	BookTitle  string `json:"book_title,omitempty"`
	BookAuthor string `json:"book_author,omitempty"`
	Quantity   int    `json:"quantity"`
}

// LoanItemDTO is one frozen history line of a confirmed loan.
type LoanItemDTO struct {
	ID         uint   `json:"id"`
	BookID     uint   `json:"book_id"`
	BookTitle  string `json:"book_title,omitempty"`
	BookAuthor string `json:"book_author,omitempty"`
	Quantity   int    `json:"quantity"`
}

// LoanDTO carries a loan with its derived lateness figures. DaysOverdue
// and PenaltyPrice are computed at read time against the injected clock,
// never stored.
type LoanDTO struct {
	ID            uint          `json:"id"`
	UserID        uint          `json:"user_id"`
	OwnerUsername string        `json:"owner_username,omitempty"`
	OwnerName     string        `json:"owner_name,omitempty"`
	LoanDate      time.Time     `json:"loan_date"`
	DueDate       time.Time     `json:"due_date"`
	DeliveryDate  *time.Time    `json:"delivery_date,omitempty"`
	Quantity      int           `json:"quantity"`
	DaysOverdue   int           `json:"days_overdue"`
	PenaltyPrice  float64       `json:"penalty_price"`
	Items         []LoanItemDTO `json:"items,omitempty"`
}

func cartItemToDTO(item *loan.CartItem) CartItemDTO {
	dto := CartItemDTO{
		ID:       item.ID(),
		BookID:   item.BookID(),
		Quantity: item.Quantity(),
	}
	if b := item.Book(); b != nil {
		dto.BookTitle = b.Title()
		dto.BookAuthor = b.Author()
	}
	return dto
}

func loanToDTO(l *loan.Loan, now time.Time, penaltyPerDay float64) LoanDTO {
	dto := LoanDTO{
		ID:           l.ID(),
		UserID:       l.UserID(),
		LoanDate:     l.LoanDate(),
		DueDate:      l.DueDate(),
		DeliveryDate: l.DeliveryDate(),
		Quantity:     l.Quantity(),
		DaysOverdue:  l.DaysOverdue(now),
		PenaltyPrice: l.PenaltyPrice(now, penaltyPerDay),
	}
	if owner := l.User(); owner != nil {
		dto.OwnerUsername = owner.Username()
		dto.OwnerName = owner.FullName()
	}
	for _, item := range l.Items() {
		itemDTO := LoanItemDTO{
			ID:       item.ID(),
			BookID:   item.BookID(),
			Quantity: item.Quantity(),
		}
		if b := item.Book(); b != nil {
			itemDTO.BookTitle = b.Title()
			itemDTO.BookAuthor = b.Author()
		}
		dto.Items = append(dto.Items, itemDTO)
	}
	return dto
}
