package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel holds dashboard accounts. Content is only ever written by a
// caller whose IsStaff flag is set.
type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"column:user_name;type:varchar(50);uniqueIndex;not null" json:"user_name"`
	Email    string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string    `gorm:"column:password;type:varchar(250);not null" json:"-"`
	IsStaff  bool      `gorm:"column:is_staff;not null;default:false" json:"is_staff"`
	IsActive bool      `gorm:"column:is_active;not null" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
