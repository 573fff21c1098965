package dto

import (
	"time"

	m "aidjourney_backend/internals/features/sitecontent/story/model"
	helper "aidjourney_backend/internals/helpers"
)

type CreateStoryRequest struct {
	Title    string `json:"title" form:"title" validate:"required,max=160"`
	Excerpt  string `json:"excerpt" form:"excerpt"`
	Body     string `json:"body" form:"body"`
	Image    string `json:"image" form:"image"`
	Tag      string `json:"tag" form:"tag" validate:"max=60"`
	Href     string `json:"href" form:"href" validate:"omitempty,nospace,max=200"`
	Order    *uint  `json:"order" form:"order"`
	IsActive *bool  `json:"is_active" form:"is_active"`
}

func (r CreateStoryRequest) ToModel() m.StoryModel {
	mm := m.StoryModel{
		Title:    r.Title,
		Excerpt:  r.Excerpt,
		Body:     r.Body,
		Image:    r.Image,
		Tag:      r.Tag,
		Href:     r.Href,
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

type UpdateStoryRequest struct {
	Title    *string `json:"title" form:"title" validate:"omitempty,max=160"`
	Excerpt  *string `json:"excerpt" form:"excerpt"`
	Body     *string `json:"body" form:"body"`
	Image    *string `json:"image" form:"image"`
	Tag      *string `json:"tag" form:"tag" validate:"omitempty,max=60"`
	Href     *string `json:"href" form:"href" validate:"omitempty,nospace,max=200"`
	Order    *uint   `json:"order" form:"order"`
	IsActive *bool   `json:"is_active" form:"is_active"`
}

func (r UpdateStoryRequest) Apply(mm *m.StoryModel) {
	if r.Title != nil {
		mm.Title = *r.Title
	}
	if r.Excerpt != nil {
		mm.Excerpt = *r.Excerpt
	}
	if r.Body != nil {
		mm.Body = *r.Body
	}
	if r.Image != nil {
		mm.Image = *r.Image
	}
	if r.Tag != nil {
		mm.Tag = *r.Tag
	}
	if r.Href != nil {
		mm.Href = *r.Href
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	if r.IsActive != nil {
		mm.IsActive = *r.IsActive
	}
}

type StoryPublic struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
	Tag      string `json:"tag"`
	Href     string `json:"href"`
	Order    uint   `json:"order"`
}

type StoryAdmin struct {
	StoryPublic
	Image     string    `json:"image"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPublic(mm m.StoryModel) StoryPublic {
	return StoryPublic{
		ID:       mm.ID,
		Title:    mm.Title,
		Excerpt:  mm.Excerpt,
		Body:     mm.Body,
		ImageURL: helper.PublicImageURL(mm.Image),
		Tag:      mm.Tag,
		Href:     mm.Href,
		Order:    mm.SortOrder,
	}
}

func ToAdmin(mm m.StoryModel) StoryAdmin {
	return StoryAdmin{
		StoryPublic: ToPublic(mm),
		Image:       mm.Image,
		IsActive:    mm.IsActive,
		CreatedAt:   mm.CreatedAt,
		UpdatedAt:   mm.UpdatedAt,
	}
}

func ToPublicList(ms []m.StoryModel) []StoryPublic {
	out := make([]StoryPublic, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToPublic(mm))
	}
	return out
}

func ToAdminList(ms []m.StoryModel) []StoryAdmin {
	out := make([]StoryAdmin, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToAdmin(mm))
	}
	return out
}
