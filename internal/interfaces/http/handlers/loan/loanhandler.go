package loan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"athenaeum/internal/application/loan/usecases"
	"athenaeum/internal/shared/logger"
	"athenaeum/internal/shared/utils"
)

type LoanHandler struct {
	addItemToCartUC  usecases.AddItemToCartExecutor
	updateCartItemUC usecases.UpdateCartItemExecutor
	removeCartItemUC usecases.RemoveCartItemExecutor
	getCartUC        usecases.GetCartExecutor
	confirmLoanUC    usecases.ConfirmLoanExecutor
	listLoansUC      usecases.ListLoansExecutor
	getLoanUC        usecases.GetLoanExecutor
	recordDeliveryUC usecases.RecordDeliveryExecutor
	logger           logger.Interface
}

func NewLoanHandler(
	addItemToCartUC usecases.AddItemToCartExecutor,
	updateCartItemUC usecases.UpdateCartItemExecutor,
	removeCartItemUC usecases.RemoveCartItemExecutor,
	getCartUC usecases.GetCartExecutor,
	confirmLoanUC usecases.ConfirmLoanExecutor,
	listLoansUC usecases.ListLoansExecutor,
	getLoanUC usecases.GetLoanExecutor,
	recordDeliveryUC usecases.RecordDeliveryExecutor,
) *LoanHandler {
	return &LoanHandler{
		addItemToCartUC:  addItemToCartUC,
		updateCartItemUC: updateCartItemUC,
		removeCartItemUC: removeCartItemUC,
		getCartUC:        getCartUC,
		confirmLoanUC:    confirmLoanUC,
		listLoansUC:      listLoansUC,
		getLoanUC:        getLoanUC,
		recordDeliveryUC: recordDeliveryUC,
		logger:           logger.NewLogger(),
	}
}

// AddCartItem handles POST /cart/items
func (h *LoanHandler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add cart item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	username, _ := c.Get("username")

	if err := h.addItemToCartUC.Execute(c.Request.Context(), req.ToCommand(username.(string))); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item added to cart", nil)
}

// UpdateCartItem handles PATCH /cart/items/:id
func (h *LoanHandler) UpdateCartItem(c *gin.Context) {
	cartItemID, err := utils.ParseUintParam(c, "id", "cart item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update cart item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateCartItemCommand{
		CartItemID: cartItemID,
		Delta:      req.Delta,
	}

	if err := h.updateCartItemUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cart item updated", nil)
}

// RemoveCartItem handles DELETE /cart/items/:id
func (h *LoanHandler) RemoveCartItem(c *gin.Context) {
	cartItemID, err := utils.ParseUintParam(c, "id", "cart item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RemoveCartItemCommand{CartItemID: cartItemID}

	if err := h.removeCartItemUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetCart handles GET /cart
func (h *LoanHandler) GetCart(c *gin.Context) {
	username, _ := c.Get("username")

	cmd := usecases.GetCartCommand{Username: username.(string)}

	result, err := h.getCartUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ConfirmLoan handles POST /loans/confirm
func (h *LoanHandler) ConfirmLoan(c *gin.Context) {
	username, _ := c.Get("username")

	cmd := usecases.ConfirmLoanCommand{Username: username.(string)}

	result, err := h.confirmLoanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Confirmed {
		utils.SuccessResponse(c, http.StatusOK, "No cart items to confirm", result)
		return
	}

	utils.CreatedResponse(c, result, "Loan confirmed successfully")
}

// ListLoans handles GET /loans
func (h *LoanHandler) ListLoans(c *gin.Context) {
	username, _ := c.Get("username")

	cmd := usecases.ListLoansCommand{Username: username.(string)}

	result, err := h.listLoansUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetLoan handles GET /loans/:id
func (h *LoanHandler) GetLoan(c *gin.Context) {
	loanID, err := utils.ParseUintParam(c, "id", "loan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GetLoanCommand{LoanID: loanID}

	result, err := h.getLoanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RecordDelivery handles POST /loans/:id/delivery
func (h *LoanHandler) RecordDelivery(c *gin.Context) {
	loanID, err := utils.ParseUintParam(c, "id", "loan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; an empty request means "delivered now".
	var req RecordDeliveryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for record delivery", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	cmd := usecases.RecordDeliveryCommand{
		LoanID:       loanID,
		DeliveryDate: req.DeliveryDate,
	}

	if err := h.recordDeliveryUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery recorded", nil)
}
