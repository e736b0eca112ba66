package models

type BookModel struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:255;not null;index"`
	Author        string `gorm:"size:255;not null;index"`
	Publisher     string `gorm:"size:255"`
	ReleaseYear   *int
	Copies        int    `gorm:"not null;default:0"`
	GenreID       uint   `gorm:"index"`
	ImageURL      string `gorm:"size:500"`
	IsAvailable   bool   `gorm:"not null;default:true"`
	WasDeleted    bool   `gorm:"not null;default:false;index"`
	CatalogedByID uint   `gorm:"not null;index"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`

	// Deleting a user who cataloged books must fail, not cascade.
	CatalogedBy *UserModel `gorm:"foreignKey:CatalogedByID;constraint:OnDelete:RESTRICT"`
}

func (BookModel) TableName() string {
	return "books"
}
