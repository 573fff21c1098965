package model

import "time"

// BannerModel is a hero-slider slide on the home page.
type BannerModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title;type:varchar(120);not null" json:"title"`
	Subtitle    string `gorm:"column:subtitle;type:varchar(200)" json:"subtitle"`
	Image       string `gorm:"column:image;type:text;not null" json:"image"`
	MobileImage string `gorm:"column:mobile_image;type:text" json:"mobile_image"`
	CtaLabel    string `gorm:"column:cta_label;type:varchar(60)" json:"cta_label"`
	CtaHref     string `gorm:"column:cta_href;type:varchar(200)" json:"cta_href"`
	SortOrder   uint   `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive    bool   `gorm:"column:is_active;not null" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BannerModel) TableName() string { return "banners" }
