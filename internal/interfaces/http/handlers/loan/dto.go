package loan

import (
	"time"

	"athenaeum/internal/application/loan/usecases"
)

type AddCartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

func (r *AddCartItemRequest) ToCommand(username string) usecases.AddItemToCartCommand {
	return usecases.AddItemToCartCommand{
		Username: username,
		BookID:   r.BookID,
		Quantity: r.Quantity,
	}
}

type UpdateCartItemRequest struct {
	// Delta is a signed quantity adjustment, e.g. +1 or -1.
	Delta int `json:"delta" binding:"required"`
}

type RecordDeliveryRequest struct {
	DeliveryDate *time.Time `json:"delivery_date"`
}
