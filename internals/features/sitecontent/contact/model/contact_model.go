package model

import "time"

// ContactMessageModel rows are immutable once submitted; there is no update
// path, only list/retrieve/delete for staff.
type ContactMessageModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(254);not null" json:"email"`
	Phone     string    `gorm:"column:phone;type:varchar(40)" json:"phone"`
	Subject   string    `gorm:"column:subject;type:varchar(200)" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }

// ContactInfoModel is a singleton at a fixed key, same convention as the
// about section.
type ContactInfoModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(254)" json:"email"`
	Phone     string    `gorm:"column:phone;type:varchar(40)" json:"phone"`
	Address   string    `gorm:"column:address;type:text" json:"address"`
	Hours     string    `gorm:"column:hours;type:varchar(200)" json:"hours"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContactInfoModel) TableName() string { return "contact_infos" }
