package model

import "time"

type NewsModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(180);not null" json:"title"`
	Slug      string    `gorm:"column:slug;type:varchar(200);not null;uniqueIndex" json:"slug"`
	Image     string    `gorm:"column:image;type:text;not null" json:"image"`
	Summary   string    `gorm:"column:summary;type:text" json:"summary"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	Date      time.Time `gorm:"column:date;type:date;not null" json:"date"`
	Published bool      `gorm:"column:published;not null" json:"published"`
	Tag       string    `gorm:"column:tag;type:varchar(60)" json:"tag"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NewsModel) TableName() string { return "news" }
