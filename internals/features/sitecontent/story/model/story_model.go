package model

import "time"

type StoryModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(160);not null" json:"title"`
	Excerpt   string    `gorm:"column:excerpt;type:text" json:"excerpt"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	Image     string    `gorm:"column:image;type:text" json:"image"`
	Tag       string    `gorm:"column:tag;type:varchar(60)" json:"tag"`
	Href      string    `gorm:"column:href;type:varchar(200)" json:"href"`
	SortOrder uint      `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StoryModel) TableName() string { return "stories" }
