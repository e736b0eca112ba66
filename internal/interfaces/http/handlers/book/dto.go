package book

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"athenaeum/internal/application/book/usecases"
)

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Author      string `json:"author" binding:"required,max=200"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseYear *int   `json:"release_year,omitempty"`
	Copies      int    `json:"copies" binding:"min=0"`
	GenreID     uint   `json:"genre_id,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

func (r *CreateBookRequest) ToCommand(catalogedByID uint) usecases.CreateBookCommand {
	return usecases.CreateBookCommand{
		Title:         r.Title,
		Author:        r.Author,
		Publisher:     r.Publisher,
		ReleaseYear:   r.ReleaseYear,
		Copies:        r.Copies,
		GenreID:       r.GenreID,
		ImageURL:      r.ImageURL,
		IsAvailable:   r.IsAvailable,
		CatalogedByID: catalogedByID,
	}
}

type UpdateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Author      string `json:"author" binding:"required,max=200"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseYear *int   `json:"release_year,omitempty"`
	Copies      int    `json:"copies" binding:"min=0"`
	GenreID     uint   `json:"genre_id,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

func (r *UpdateBookRequest) ToCommand(bookID uint) usecases.UpdateBookCommand {
	return usecases.UpdateBookCommand{
		BookID:      bookID,
		Title:       r.Title,
		Author:      r.Author,
		Publisher:   r.Publisher,
		ReleaseYear: r.ReleaseYear,
		Copies:      r.Copies,
		GenreID:     r.GenreID,
		ImageURL:    r.ImageURL,
		IsAvailable: r.IsAvailable,
	}
}

type ListBooksRequest struct {
	Title    string
	Author   string
	Page     int
	PageSize int
	OrderBy  string
	Order    string
}

func (r *ListBooksRequest) ToCommand() usecases.ListBooksCommand {
	return usecases.ListBooksCommand{
		Title:    r.Title,
		Author:   r.Author,
		Page:     r.Page,
		PageSize: r.PageSize,
		OrderBy:  r.OrderBy,
		Order:    r.Order,
	}
}

func parseListBooksRequest(c *gin.Context) *ListBooksRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &ListBooksRequest{
		Title:    c.Query("title"),
		Author:   c.Query("author"),
		Page:     page,
		PageSize: pageSize,
		OrderBy:  c.DefaultQuery("order_by", "title"),
		Order:    c.DefaultQuery("order", "asc"),
	}
}
