package dto

import (
	aboutModel "aidjourney_backend/internals/features/sitecontent/about/model"
)

/* =========================================================
   WHAT WE DO
   ========================================================= */

type CreateWhatWeDoRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=120"`
	Description string `json:"description" form:"description" validate:"required"`
	SortOrder   uint   `json:"order" form:"order"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
}

func (r *CreateWhatWeDoRequest) ToModel(aboutID uint) aboutModel.WhatWeDoItemModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return aboutModel.WhatWeDoItemModel{
		AboutID:     aboutID,
		Title:       r.Title,
		Description: r.Description,
		SortOrder:   r.SortOrder,
		IsActive:    active,
	}
}

type UpdateWhatWeDoRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,max=120"`
	Description *string `json:"description" form:"description"`
	SortOrder   *uint   `json:"order" form:"order"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
}

func (r *UpdateWhatWeDoRequest) Apply(m *aboutModel.WhatWeDoItemModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.SortOrder != nil {
		m.SortOrder = *r.SortOrder
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type WhatWeDoPublic struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   uint   `json:"order"`
}

type WhatWeDoAdmin struct {
	WhatWeDoPublic
	IsActive bool `json:"is_active"`
}

func ToWhatWeDoPublic(m aboutModel.WhatWeDoItemModel) WhatWeDoPublic {
	return WhatWeDoPublic{ID: m.ID, Title: m.Title, Description: m.Description, SortOrder: m.SortOrder}
}

func ToWhatWeDoAdmin(m aboutModel.WhatWeDoItemModel) WhatWeDoAdmin {
	return WhatWeDoAdmin{WhatWeDoPublic: ToWhatWeDoPublic(m), IsActive: m.IsActive}
}

func ToWhatWeDoPublicList(rows []aboutModel.WhatWeDoItemModel) []WhatWeDoPublic {
	out := make([]WhatWeDoPublic, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToWhatWeDoPublic(m))
	}
	return out
}

func ToWhatWeDoAdminList(rows []aboutModel.WhatWeDoItemModel) []WhatWeDoAdmin {
	out := make([]WhatWeDoAdmin, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToWhatWeDoAdmin(m))
	}
	return out
}

/* =========================================================
   JOURNEY
   ========================================================= */

type CreateJourneyRequest struct {
	Year      string `json:"year" form:"year" validate:"required,max=10"`
	Text      string `json:"text" form:"text" validate:"required,max=300"`
	SortOrder uint   `json:"order" form:"order"`
	IsActive  *bool  `json:"is_active" form:"is_active"`
}

func (r *CreateJourneyRequest) ToModel(aboutID uint) aboutModel.JourneyEntryModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return aboutModel.JourneyEntryModel{
		AboutID:   aboutID,
		Year:      r.Year,
		Text:      r.Text,
		SortOrder: r.SortOrder,
		IsActive:  active,
	}
}

type UpdateJourneyRequest struct {
	Year      *string `json:"year" form:"year" validate:"omitempty,max=10"`
	Text      *string `json:"text" form:"text" validate:"omitempty,max=300"`
	SortOrder *uint   `json:"order" form:"order"`
	IsActive  *bool   `json:"is_active" form:"is_active"`
}

func (r *UpdateJourneyRequest) Apply(m *aboutModel.JourneyEntryModel) {
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.Text != nil {
		m.Text = *r.Text
	}
	if r.SortOrder != nil {
		m.SortOrder = *r.SortOrder
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type JourneyPublic struct {
	ID        uint   `json:"id"`
	Year      string `json:"year"`
	Text      string `json:"text"`
	SortOrder uint   `json:"order"`
}

type JourneyAdmin struct {
	JourneyPublic
	IsActive bool `json:"is_active"`
}

func ToJourneyPublic(m aboutModel.JourneyEntryModel) JourneyPublic {
	return JourneyPublic{ID: m.ID, Year: m.Year, Text: m.Text, SortOrder: m.SortOrder}
}

func ToJourneyAdmin(m aboutModel.JourneyEntryModel) JourneyAdmin {
	return JourneyAdmin{JourneyPublic: ToJourneyPublic(m), IsActive: m.IsActive}
}

func ToJourneyPublicList(rows []aboutModel.JourneyEntryModel) []JourneyPublic {
	out := make([]JourneyPublic, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToJourneyPublic(m))
	}
	return out
}

func ToJourneyAdminList(rows []aboutModel.JourneyEntryModel) []JourneyAdmin {
	out := make([]JourneyAdmin, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToJourneyAdmin(m))
	}
	return out
}
