package book

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"athenaeum/internal/application/book/usecases"
	"athenaeum/internal/shared/logger"
	"athenaeum/internal/shared/utils"
)

type BookHandler struct {
	createBookUC usecases.CreateBookExecutor
	updateBookUC usecases.UpdateBookExecutor
	deleteBookUC usecases.DeleteBookExecutor
	getBookUC    usecases.GetBookExecutor
	listBooksUC  usecases.ListBooksExecutor
	logger       logger.Interface
}

func NewBookHandler(
	createBookUC usecases.CreateBookExecutor,
	updateBookUC usecases.UpdateBookExecutor,
	deleteBookUC usecases.DeleteBookExecutor,
	getBookUC usecases.GetBookExecutor,
	listBooksUC usecases.ListBooksExecutor,
) *BookHandler {
	return &BookHandler{
		createBookUC: createBookUC,
		updateBookUC: updateBookUC,
		deleteBookUC: deleteBookUC,
		getBookUC:    getBookUC,
		listBooksUC:  listBooksUC,
		logger:       logger.NewLogger(),
	}
}

// CreateBook handles POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create book", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.createBookUC.Execute(c.Request.Context(), req.ToCommand(userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Book created successfully")
}

// UpdateBook handles PUT /books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, err := utils.ParseUintParam(c, "id", "book")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update book", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateBookUC.Execute(c.Request.Context(), req.ToCommand(bookID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Book updated successfully", result)
}

// DeleteBook handles DELETE /books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, err := utils.ParseUintParam(c, "id", "book")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteBookCommand{BookID: bookID}

	if err := h.deleteBookUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetBook handles GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	bookID, err := utils.ParseUintParam(c, "id", "book")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GetBookCommand{BookID: bookID}

	result, err := h.getBookUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListBooks handles GET /books
func (h *BookHandler) ListBooks(c *gin.Context) {
	req := parseListBooksRequest(c)

	result, err := h.listBooksUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Books, result.Total, result.Page, result.PageSize)
}
