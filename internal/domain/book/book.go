package book

import (
	"fmt"
	"strings"
	"time"
)

// Book is a catalog record. Copies is informational only: lending never
// decrements it, multi-copy availability tracking is out of scope.
type Book struct {
	id            uint
	title         string
	author        string
	publisher     string
	releaseYear   *int
	copies        int
	genreID       uint
	imageURL      string
	isAvailable   bool
	wasDeleted    bool
	catalogedByID uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBook(title, author, publisher string, releaseYear *int, copies int, genreID uint, imageURL string, isAvailable bool, catalogedByID uint) (*Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, fmt.Errorf("author is required")
	}
	if copies < 0 {
		return nil, fmt.Errorf("copies cannot be negative")
	}
	if releaseYear != nil && (*releaseYear < 0 || *releaseYear > time.Now().UTC().Year()) {
		return nil, fmt.Errorf("release year is out of range")
	}
	if catalogedByID == 0 {
		return nil, fmt.Errorf("cataloging user is required")
	}

	now := time.Now().UTC()
	return &Book{
		title:         title,
		author:        author,
		publisher:     publisher,
		releaseYear:   releaseYear,
		copies:        copies,
		genreID:       genreID,
		imageURL:      imageURL,
		isAvailable:   isAvailable,
		catalogedByID: catalogedByID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBook(
	id uint,
	title, author, publisher string,
	releaseYear *int,
	copies int,
	genreID uint,
	imageURL string,
	isAvailable, wasDeleted bool,
	catalogedByID uint,
	createdAt, updatedAt time.Time,
) (*Book, error) {
	if id == 0 {
		return nil, fmt.Errorf("book ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	return &Book{
		id:            id,
		title:         title,
		author:        author,
		publisher:     publisher,
		releaseYear:   releaseYear,
		copies:        copies,
		genreID:       genreID,
		imageURL:      imageURL,
		isAvailable:   isAvailable,
		wasDeleted:    wasDeleted,
		catalogedByID: catalogedByID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (b *Book) ID() uint { return b.id }
func (b *Book) Title() string { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) Publisher() string { return b.publisher }
func (b *Book) ReleaseYear() *int { return b.releaseYear }
func (b *Book) Copies() int { return b.copies }
func (b *Book) GenreID() uint { return b.genreID }
func (b *Book) ImageURL() string { return b.imageURL }
func (b *Book) IsAvailable() bool { return b.isAvailable }
func (b *Book) WasDeleted() bool { return b.wasDeleted }
func (b *Book) CatalogedByID() uint { return b.catalogedByID }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }

func (b *Book) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("book ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("book ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Book) UpdateDetails(title, author, publisher string, releaseYear *int, copies int, genreID uint, imageURL string, isAvailable bool) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return fmt.Errorf("author is required")
	}
	if copies < 0 {
		return fmt.Errorf("copies cannot be negative")
	}

	b.title = title
	b.author = author
	b.publisher = publisher
	b.releaseYear = releaseYear
	b.copies = copies
	b.genreID = genreID
	b.imageURL = imageURL
	b.isAvailable = isAvailable
	b.updatedAt = time.Now().UTC()
	return nil
}

func (b *Book) MarkDeleted() {
	b.wasDeleted = true
	b.updatedAt = time.Now().UTC()
}
