package usecases

import (
	"athenaeum/internal/domain/book"
)

type BookDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseYear *int   `json:"release_year,omitempty"`
	Copies      int    `json:"copies"`
	GenreID     uint   `json:"genre_id,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

func bookToDTO(b *book.Book) BookDTO {
	return BookDTO{
		ID:          b.ID(),
		Title:       b.Title(),
		Author:      b.Author(),
		Publisher:   b.Publisher(),
		ReleaseYear: b.ReleaseYear(),
		Copies:      b.Copies(),
		GenreID:     b.GenreID(),
		ImageURL:    b.ImageURL(),
		IsAvailable: b.IsAvailable(),
	}
}
