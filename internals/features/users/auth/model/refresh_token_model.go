package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenModel stores an HMAC of each issued refresh token. Tokens are
// rotated on every refresh; unknown hashes are rejected.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"column:token;type:varchar(128);uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	UserAgent *string   `gorm:"column:user_agent;type:text" json:"user_agent,omitempty"`
	IP        *string   `gorm:"column:ip;type:varchar(64)" json:"ip,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }

func (r *RefreshTokenModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
