package model

import "time"

type ProgramModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(140);not null" json:"title"`
	Slug      string    `gorm:"column:slug;type:varchar(160);not null;uniqueIndex" json:"slug"`
	Summary   string    `gorm:"column:summary;type:text" json:"summary"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	Icon      string    `gorm:"column:icon;type:varchar(60)" json:"icon"`
	Tag       string    `gorm:"column:tag;type:varchar(60)" json:"tag"`
	Image     string    `gorm:"column:image;type:text;not null" json:"image"`
	SortOrder uint      `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProgramModel) TableName() string { return "programs" }
