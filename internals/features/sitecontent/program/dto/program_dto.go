package dto

import (
	"time"

	m "aidjourney_backend/internals/features/sitecontent/program/model"
	helper "aidjourney_backend/internals/helpers"
)

type CreateProgramRequest struct {
	Title    string `json:"title" form:"title" validate:"required,max=140"`
	Slug     string `json:"slug" form:"slug" validate:"omitempty,max=160,nospace"`
	Summary  string `json:"summary" form:"summary"`
	Body     string `json:"body" form:"body"`
	Icon     string `json:"icon" form:"icon" validate:"max=60"`
	Tag      string `json:"tag" form:"tag" validate:"max=60"`
	Image    string `json:"image" form:"image"` // set from upload when multipart
	Order    *uint  `json:"order" form:"order"`
	IsActive *bool  `json:"is_active" form:"is_active"`
}

func (r CreateProgramRequest) ToModel() m.ProgramModel {
	mm := m.ProgramModel{
		Title:    r.Title,
		Slug:     r.Slug,
		Summary:  r.Summary,
		Body:     r.Body,
		Icon:     r.Icon,
		Tag:      r.Tag,
		Image:    r.Image,
		IsActive: true,
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	if r.IsActive != nil {
		mm.IsActive = *r.IsActive
	}
	return mm
}

// Slug is deliberately absent: it is fixed at create time and never
// re-derived from a title change.
type UpdateProgramRequest struct {
	Title    *string `json:"title" form:"title" validate:"omitempty,max=140"`
	Summary  *string `json:"summary" form:"summary"`
	Body     *string `json:"body" form:"body"`
	Icon     *string `json:"icon" form:"icon" validate:"omitempty,max=60"`
	Tag      *string `json:"tag" form:"tag" validate:"omitempty,max=60"`
	Image    *string `json:"image" form:"image"`
	Order    *uint   `json:"order" form:"order"`
	IsActive *bool   `json:"is_active" form:"is_active"`
}

func (r UpdateProgramRequest) Apply(mm *m.ProgramModel) {
	if r.Title != nil {
		mm.Title = *r.Title
	}
	if r.Summary != nil {
		mm.Summary = *r.Summary
	}
	if r.Body != nil {
		mm.Body = *r.Body
	}
	if r.Icon != nil {
		mm.Icon = *r.Icon
	}
	if r.Tag != nil {
		mm.Tag = *r.Tag
	}
	if r.Image != nil {
		mm.Image = *r.Image
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	if r.IsActive != nil {
		mm.IsActive = *r.IsActive
	}
}

type ProgramPublic struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Summary  string `json:"summary"`
	Body     string `json:"body"`
	Icon     string `json:"icon"`
	Tag      string `json:"tag"`
	ImageURL string `json:"image_url"`
	Order    uint   `json:"order"`
}

type ProgramAdmin struct {
	ProgramPublic
	Image     string    `json:"image"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPublic(mm m.ProgramModel) ProgramPublic {
	return ProgramPublic{
		ID:       mm.ID,
		Title:    mm.Title,
		Slug:     mm.Slug,
		Summary:  mm.Summary,
		Body:     mm.Body,
		Icon:     mm.Icon,
		Tag:      mm.Tag,
		ImageURL: helper.PublicImageURL(mm.Image),
		Order:    mm.SortOrder,
	}
}

func ToAdmin(mm m.ProgramModel) ProgramAdmin {
	return ProgramAdmin{
		ProgramPublic: ToPublic(mm),
		Image:         mm.Image,
		IsActive:      mm.IsActive,
		CreatedAt:     mm.CreatedAt,
		UpdatedAt:     mm.UpdatedAt,
	}
}

func ToPublicList(ms []m.ProgramModel) []ProgramPublic {
	out := make([]ProgramPublic, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToPublic(mm))
	}
	return out
}

func ToAdminList(ms []m.ProgramModel) []ProgramAdmin {
	out := make([]ProgramAdmin, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToAdmin(mm))
	}
	return out
}
