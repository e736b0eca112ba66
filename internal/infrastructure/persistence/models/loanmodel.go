package models

import "time"

// LoanModel and its children use real time.Time columns rather than the
// millisecond integers the bookkeeping timestamps use: loan dates are
// business values produced by the injected clock, never by the database.
type LoanModel struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	LoanDate     time.Time `gorm:"not null;index"`
	DueDate      time.Time `gorm:"not null"`
	DeliveryDate *time.Time
	WasDeleted   bool  `gorm:"not null;default:false;index"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`

	User  *UserModel        `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Items []LoanDetailModel `gorm:"foreignKey:LoanID"`
}

func (LoanModel) TableName() string {
	return "loans"
}

// LoanDetailModel rows are immutable history once written; they are never
// updated or individually removed.
type LoanDetailModel struct {
	ID         uint `gorm:"primaryKey"`
	LoanID     uint `gorm:"not null;index"`
	UserID     uint `gorm:"not null;index"`
	BookID     uint `gorm:"not null;index"`
	Quantity   int  `gorm:"not null"`
	WasDeleted bool `gorm:"not null;default:false"`

	Book *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (LoanDetailModel) TableName() string {
	return "loan_details"
}

// LoanDetailTempModel is a staged cart line. The composite unique index is
// what makes the add-to-cart upsert safe: at most one row per (user, book)
// pair can ever exist.
type LoanDetailTempModel struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_cart_user_book"`
	BookID     uint `gorm:"not null;uniqueIndex:idx_cart_user_book"`
	Quantity   int  `gorm:"not null"`
	WasDeleted bool `gorm:"not null;default:false"`

	Book *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (LoanDetailTempModel) TableName() string {
	return "loan_details_temp"
}
