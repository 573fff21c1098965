package model

import "time"

type ImpactStatModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Label     string    `gorm:"column:label;type:varchar(120);not null" json:"label"`
	Value     uint      `gorm:"column:value;not null" json:"value"`
	Suffix    string    `gorm:"column:suffix;type:varchar(8)" json:"suffix"`
	SortOrder uint      `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ImpactStatModel) TableName() string { return "impact_stats" }
