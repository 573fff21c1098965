package model

import "time"

// EventCategoryModel owns events; deleting a category takes its events (and
// their photos) with it in one transaction.
type EventCategoryModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Slug      string    `gorm:"column:slug;type:varchar(140);not null;uniqueIndex" json:"slug"`
	SortOrder uint      `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Events []EventModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventCategoryModel) TableName() string { return "event_categories" }

type EventModel struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"id"`
	CategoryID uint      `gorm:"column:category_id;not null;index" json:"category_id"`
	Title      string    `gorm:"column:title;type:varchar(160);not null" json:"title"`
	Year       uint      `gorm:"column:year;not null;default:0" json:"year"`
	SortOrder  uint      `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive   bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Category EventCategoryModel `gorm:"foreignKey:CategoryID" json:"-"`
	Photos   []EventPhotoModel  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventModel) TableName() string { return "events" }

type EventPhotoModel struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	EventID   uint   `gorm:"column:event_id;not null;index" json:"event_id"`
	Image     string `gorm:"column:image;type:text;not null" json:"image"`
	Caption   string `gorm:"column:caption;type:varchar(200)" json:"caption"`
	SortOrder uint   `gorm:"column:sort_order;not null;default:0" json:"order"`
}

func (EventPhotoModel) TableName() string { return "event_photos" }
