package models

type UserModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Username           string `gorm:"uniqueIndex;size:100;not null"`
	Email              string `gorm:"uniqueIndex;size:255;not null"`
	FirstName          string `gorm:"size:100"`
	LastName           string `gorm:"size:100"`
	Phone              string `gorm:"size:30"`
	ImageURL           string `gorm:"size:500"`
	PasswordHash       string `gorm:"size:255;not null"`
	Role               string `gorm:"size:20;not null;default:reader;index"`
	MustChangePassword bool   `gorm:"not null;default:true"`
	AdminConfirmed     bool   `gorm:"not null;default:false"`
	WasDeleted         bool   `gorm:"not null;default:false;index"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
