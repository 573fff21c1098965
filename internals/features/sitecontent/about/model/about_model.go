package model

import (
	"time"

	"gorm.io/datatypes"
)

// AboutSectionModel is a singleton: one logical row at a fixed key,
// materialized on first access. List-valued fields are stored as JSON but
// edited as delimited text.
type AboutSectionModel struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	BadgeText string `gorm:"column:badge_text;type:varchar(80)" json:"badge_text"`
	Heading   string `gorm:"column:heading;type:varchar(200)" json:"heading"`
	Body      string `gorm:"column:body;type:text" json:"body"`
	Image     string `gorm:"column:image;type:text" json:"image"`

	Stat1Number string `gorm:"column:stat1_number;type:varchar(20)" json:"stat1_number"`
	Stat1Label  string `gorm:"column:stat1_label;type:varchar(100)" json:"stat1_label"`
	Stat2Number string `gorm:"column:stat2_number;type:varchar(20)" json:"stat2_number"`
	Stat2Label  string `gorm:"column:stat2_label;type:varchar(100)" json:"stat2_label"`
	Stat3Number string `gorm:"column:stat3_number;type:varchar(20)" json:"stat3_number"`
	Stat3Label  string `gorm:"column:stat3_label;type:varchar(100)" json:"stat3_label"`
	Stat4Number string `gorm:"column:stat4_number;type:varchar(20)" json:"stat4_number"`
	Stat4Label  string `gorm:"column:stat4_label;type:varchar(100)" json:"stat4_label"`

	MissionTitle       string `gorm:"column:mission_title;type:varchar(200)" json:"mission_title"`
	MissionDescription string `gorm:"column:mission_description;type:text" json:"mission_description"`
	MissionImage       string `gorm:"column:mission_image;type:text" json:"mission_image"`
	VisionTitle        string `gorm:"column:vision_title;type:varchar(200)" json:"vision_title"`
	VisionDescription  string `gorm:"column:vision_description;type:text" json:"vision_description"`
	VisionImage        string `gorm:"column:vision_image;type:text" json:"vision_image"`
	ValuesTitle        string `gorm:"column:values_title;type:varchar(200)" json:"values_title"`
	ValuesDescription  string `gorm:"column:values_description;type:text" json:"values_description"`
	ValuesImage        string `gorm:"column:values_image;type:text" json:"values_image"`

	CtaPrimaryLabel   string `gorm:"column:cta_primary_label;type:varchar(60)" json:"cta_primary_label"`
	CtaPrimaryHref    string `gorm:"column:cta_primary_href;type:varchar(200)" json:"cta_primary_href"`
	CtaSecondaryLabel string `gorm:"column:cta_secondary_label;type:varchar(60)" json:"cta_secondary_label"`
	CtaSecondaryHref  string `gorm:"column:cta_secondary_href;type:varchar(200)" json:"cta_secondary_href"`

	HighlightWords datatypes.JSON `gorm:"column:highlight_words" json:"highlight_words"`
	Points         datatypes.JSON `gorm:"column:points" json:"points"`

	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	WhatWeDoItems  []WhatWeDoItemModel `gorm:"foreignKey:AboutID;constraint:OnDelete:CASCADE" json:"-"`
	JourneyEntries []JourneyEntryModel `gorm:"foreignKey:AboutID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AboutSectionModel) TableName() string { return "about_sections" }

// WhatWeDoItemModel: unlimited "what we do" cards under the About section.
type WhatWeDoItemModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	AboutID     uint   `gorm:"column:about_id;not null;index" json:"about_id"`
	Title       string `gorm:"column:title;type:varchar(120);not null" json:"title"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
	SortOrder   uint   `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive    bool   `gorm:"column:is_active;not null" json:"is_active"`
}

func (WhatWeDoItemModel) TableName() string { return "what_we_do_items" }

// JourneyEntryModel: one line of the "our journey" timeline.
type JourneyEntryModel struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	AboutID   uint   `gorm:"column:about_id;not null;index" json:"about_id"`
	Year      string `gorm:"column:year;type:varchar(10);not null" json:"year"`
	Text      string `gorm:"column:text;type:varchar(300);not null" json:"text"`
	SortOrder uint   `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  bool   `gorm:"column:is_active;not null" json:"is_active"`
}

func (JourneyEntryModel) TableName() string { return "journey_entries" }
