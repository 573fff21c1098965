package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	aboutModel "aidjourney_backend/internals/features/sitecontent/about/model"
	helper "aidjourney_backend/internals/helpers"
)

/* =========================================================
   JSON list columns <-> delimited text
   ========================================================= */

func listFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

func listToJSON(items []string) datatypes.JSON {
	raw, err := sonic.Marshal(items)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

/* =========================================================
   ABOUT SECTION (singleton)
   ========================================================= */

// UpdateAboutRequest covers PUT /api/admin/about. The list fields arrive as
// delimited text (comma-separated words, one point per line) and are stored
// as JSON arrays.
type UpdateAboutRequest struct {
	BadgeText *string `json:"badge_text" form:"badge_text" validate:"omitempty,max=80"`
	Heading   *string `json:"heading" form:"heading" validate:"omitempty,max=200"`
	Body      *string `json:"body" form:"body"`
	Image     *string `json:"image" form:"image"`

	Stat1Number *string `json:"stat1_number" form:"stat1_number" validate:"omitempty,max=20"`
	Stat1Label  *string `json:"stat1_label" form:"stat1_label" validate:"omitempty,max=100"`
	Stat2Number *string `json:"stat2_number" form:"stat2_number" validate:"omitempty,max=20"`
	Stat2Label  *string `json:"stat2_label" form:"stat2_label" validate:"omitempty,max=100"`
	Stat3Number *string `json:"stat3_number" form:"stat3_number" validate:"omitempty,max=20"`
	Stat3Label  *string `json:"stat3_label" form:"stat3_label" validate:"omitempty,max=100"`
	Stat4Number *string `json:"stat4_number" form:"stat4_number" validate:"omitempty,max=20"`
	Stat4Label  *string `json:"stat4_label" form:"stat4_label" validate:"omitempty,max=100"`

	MissionTitle       *string `json:"mission_title" form:"mission_title" validate:"omitempty,max=200"`
	MissionDescription *string `json:"mission_description" form:"mission_description"`
	MissionImage       *string `json:"mission_image" form:"mission_image"`
	VisionTitle        *string `json:"vision_title" form:"vision_title" validate:"omitempty,max=200"`
	VisionDescription  *string `json:"vision_description" form:"vision_description"`
	VisionImage        *string `json:"vision_image" form:"vision_image"`
	ValuesTitle        *string `json:"values_title" form:"values_title" validate:"omitempty,max=200"`
	ValuesDescription  *string `json:"values_description" form:"values_description"`
	ValuesImage        *string `json:"values_image" form:"values_image"`

	CtaPrimaryLabel   *string `json:"cta_primary_label" form:"cta_primary_label" validate:"omitempty,max=60"`
	CtaPrimaryHref    *string `json:"cta_primary_href" form:"cta_primary_href" validate:"omitempty,max=200,nospace"`
	CtaSecondaryLabel *string `json:"cta_secondary_label" form:"cta_secondary_label" validate:"omitempty,max=60"`
	CtaSecondaryHref  *string `json:"cta_secondary_href" form:"cta_secondary_href" validate:"omitempty,max=200,nospace"`

	// "word, another word" and "one point per line" respectively.
	HighlightWordsText *string `json:"highlight_words_text" form:"highlight_words_text"`
	PointsText         *string `json:"points_text" form:"points_text"`

	IsActive *bool `json:"is_active" form:"is_active"`
}

func (r *UpdateAboutRequest) Apply(m *aboutModel.AboutSectionModel) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&m.BadgeText, r.BadgeText)
	set(&m.Heading, r.Heading)
	set(&m.Body, r.Body)
	set(&m.Image, r.Image)
	set(&m.Stat1Number, r.Stat1Number)
	set(&m.Stat1Label, r.Stat1Label)
	set(&m.Stat2Number, r.Stat2Number)
	set(&m.Stat2Label, r.Stat2Label)
	set(&m.Stat3Number, r.Stat3Number)
	set(&m.Stat3Label, r.Stat3Label)
	set(&m.Stat4Number, r.Stat4Number)
	set(&m.Stat4Label, r.Stat4Label)
	set(&m.MissionTitle, r.MissionTitle)
	set(&m.MissionDescription, r.MissionDescription)
	set(&m.MissionImage, r.MissionImage)
	set(&m.VisionTitle, r.VisionTitle)
	set(&m.VisionDescription, r.VisionDescription)
	set(&m.VisionImage, r.VisionImage)
	set(&m.ValuesTitle, r.ValuesTitle)
	set(&m.ValuesDescription, r.ValuesDescription)
	set(&m.ValuesImage, r.ValuesImage)
	set(&m.CtaPrimaryLabel, r.CtaPrimaryLabel)
	set(&m.CtaPrimaryHref, r.CtaPrimaryHref)
	set(&m.CtaSecondaryLabel, r.CtaSecondaryLabel)
	set(&m.CtaSecondaryHref, r.CtaSecondaryHref)
	if r.HighlightWordsText != nil {
		m.HighlightWords = listToJSON(helper.ParseCommaList(*r.HighlightWordsText))
	}
	if r.PointsText != nil {
		m.Points = listToJSON(helper.ParseLines(*r.PointsText))
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type statOut struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type pillarOut struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type ctaOut struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// AboutPublic is the site-facing projection: resolved image URLs, lists as
// arrays, active child collections nested in display order.
type AboutPublic struct {
	BadgeText      string   `json:"badge_text"`
	Heading        string   `json:"heading"`
	HighlightWords []string `json:"highlight_words"`
	Body           string   `json:"body"`
	Image          string   `json:"image"`
	Points         []string `json:"points"`

	Stats []statOut `json:"stats"`

	Mission pillarOut `json:"mission"`
	Vision  pillarOut `json:"vision"`
	Values  pillarOut `json:"values"`

	CtaPrimary   ctaOut `json:"cta_primary"`
	CtaSecondary ctaOut `json:"cta_secondary"`

	WhatWeDo []WhatWeDoPublic `json:"what_we_do"`
	Journey  []JourneyPublic  `json:"journey"`
}

// AboutAdmin mirrors the stored row: flat fields, delimited text for the
// list columns, raw media paths alongside resolved URLs.
type AboutAdmin struct {
	ID        uint   `json:"id"`
	BadgeText string `json:"badge_text"`
	Heading   string `json:"heading"`
	Body      string `json:"body"`
	Image     string `json:"image"`
	ImageURL  string `json:"image_url"`

	Stat1Number string `json:"stat1_number"`
	Stat1Label  string `json:"stat1_label"`
	Stat2Number string `json:"stat2_number"`
	Stat2Label  string `json:"stat2_label"`
	Stat3Number string `json:"stat3_number"`
	Stat3Label  string `json:"stat3_label"`
	Stat4Number string `json:"stat4_number"`
	Stat4Label  string `json:"stat4_label"`

	MissionTitle       string `json:"mission_title"`
	MissionDescription string `json:"mission_description"`
	MissionImage       string `json:"mission_image"`
	VisionTitle        string `json:"vision_title"`
	VisionDescription  string `json:"vision_description"`
	VisionImage        string `json:"vision_image"`
	ValuesTitle        string `json:"values_title"`
	ValuesDescription  string `json:"values_description"`
	ValuesImage        string `json:"values_image"`

	CtaPrimaryLabel   string `json:"cta_primary_label"`
	CtaPrimaryHref    string `json:"cta_primary_href"`
	CtaSecondaryLabel string `json:"cta_secondary_label"`
	CtaSecondaryHref  string `json:"cta_secondary_href"`

	HighlightWords     []string `json:"highlight_words"`
	HighlightWordsText string   `json:"highlight_words_text"`
	Points             []string `json:"points"`
	PointsText         string   `json:"points_text"`

	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPublic(m aboutModel.AboutSectionModel, items []aboutModel.WhatWeDoItemModel, journey []aboutModel.JourneyEntryModel) AboutPublic {
	return AboutPublic{
		BadgeText:      m.BadgeText,
		Heading:        m.Heading,
		HighlightWords: listFromJSON(m.HighlightWords),
		Body:           m.Body,
		Image:          helper.PublicImageURL(m.Image),
		Points:         listFromJSON(m.Points),
		Stats: []statOut{
			{Number: m.Stat1Number, Label: m.Stat1Label},
			{Number: m.Stat2Number, Label: m.Stat2Label},
			{Number: m.Stat3Number, Label: m.Stat3Label},
			{Number: m.Stat4Number, Label: m.Stat4Label},
		},
		Mission:      pillarOut{Title: m.MissionTitle, Description: m.MissionDescription, Image: helper.PublicImageURL(m.MissionImage)},
		Vision:       pillarOut{Title: m.VisionTitle, Description: m.VisionDescription, Image: helper.PublicImageURL(m.VisionImage)},
		Values:       pillarOut{Title: m.ValuesTitle, Description: m.ValuesDescription, Image: helper.PublicImageURL(m.ValuesImage)},
		CtaPrimary:   ctaOut{Label: m.CtaPrimaryLabel, Href: m.CtaPrimaryHref},
		CtaSecondary: ctaOut{Label: m.CtaSecondaryLabel, Href: m.CtaSecondaryHref},
		WhatWeDo:     ToWhatWeDoPublicList(items),
		Journey:      ToJourneyPublicList(journey),
	}
}

func ToAdmin(m aboutModel.AboutSectionModel) AboutAdmin {
	words := listFromJSON(m.HighlightWords)
	points := listFromJSON(m.Points)
	return AboutAdmin{
		ID:                 m.ID,
		BadgeText:          m.BadgeText,
		Heading:            m.Heading,
		Body:               m.Body,
		Image:              m.Image,
		ImageURL:           helper.PublicImageURL(m.Image),
		Stat1Number:        m.Stat1Number,
		Stat1Label:         m.Stat1Label,
		Stat2Number:        m.Stat2Number,
		Stat2Label:         m.Stat2Label,
		Stat3Number:        m.Stat3Number,
		Stat3Label:         m.Stat3Label,
		Stat4Number:        m.Stat4Number,
		Stat4Label:         m.Stat4Label,
		MissionTitle:       m.MissionTitle,
		MissionDescription: m.MissionDescription,
		MissionImage:       m.MissionImage,
		VisionTitle:        m.VisionTitle,
		VisionDescription:  m.VisionDescription,
		VisionImage:        m.VisionImage,
		ValuesTitle:        m.ValuesTitle,
		ValuesDescription:  m.ValuesDescription,
		ValuesImage:        m.ValuesImage,
		CtaPrimaryLabel:    m.CtaPrimaryLabel,
		CtaPrimaryHref:     m.CtaPrimaryHref,
		CtaSecondaryLabel:  m.CtaSecondaryLabel,
		CtaSecondaryHref:   m.CtaSecondaryHref,
		HighlightWords:     words,
		HighlightWordsText: helper.JoinCommaList(words),
		Points:             points,
		PointsText:         helper.JoinLines(points),
		IsActive:           m.IsActive,
		UpdatedAt:          m.UpdatedAt,
	}
}
