package dto

import (
	"time"

	m "aidjourney_backend/internals/features/sitecontent/events/model"
	helper "aidjourney_backend/internals/helpers"
)

/* =========================================================
   CATEGORIES
   ========================================================= */

type CreateEventCategoryRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=120"`
	Slug     string `json:"slug" form:"slug" validate:"omitempty,max=140,nospace"`
	Order    *uint  `json:"order" form:"order"`
	IsActive *bool  `json:"is_active" form:"is_active"`
}

func (r CreateEventCategoryRequest) ToModel() m.EventCategoryModel {
	mm := m.EventCategoryModel{
		Name:     r.Name,
		Slug:     r.Slug,
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

type UpdateEventCategoryRequest struct {
	Name     *string `json:"name" form:"name" validate:"omitempty,max=120"`
	Order    *uint   `json:"order" form:"order"`
	IsActive *bool   `json:"is_active" form:"is_active"`
}

func (r UpdateEventCategoryRequest) Apply(mm *m.EventCategoryModel) {
	if r.Name != nil {
		mm.Name = *r.Name
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	if r.IsActive != nil {
		mm.IsActive = *r.IsActive
	}
}

type EventCategoryPublic struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Order uint   `json:"order"`
}

type EventCategoryAdmin struct {
	EventCategoryPublic
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCategoryPublic(mm m.EventCategoryModel) EventCategoryPublic {
	return EventCategoryPublic{ID: mm.ID, Name: mm.Name, Slug: mm.Slug, Order: mm.SortOrder}
}

func ToCategoryAdmin(mm m.EventCategoryModel) EventCategoryAdmin {
	return EventCategoryAdmin{
		EventCategoryPublic: ToCategoryPublic(mm),
		IsActive:            mm.IsActive,
		CreatedAt:           mm.CreatedAt,
		UpdatedAt:           mm.UpdatedAt,
	}
}

func ToCategoryPublicList(ms []m.EventCategoryModel) []EventCategoryPublic {
	out := make([]EventCategoryPublic, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToCategoryPublic(mm))
	}
	return out
}

func ToCategoryAdminList(ms []m.EventCategoryModel) []EventCategoryAdmin {
	out := make([]EventCategoryAdmin, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToCategoryAdmin(mm))
	}
	return out
}

/* =========================================================
   EVENTS
   ========================================================= */

type CreateEventRequest struct {
	CategoryID uint   `json:"category_id" form:"category_id" validate:"required"`
	Title      string `json:"title" form:"title" validate:"required,max=160"`
	Year       uint   `json:"year" form:"year"`
	Order      *uint  `json:"order" form:"order"`
	IsActive   *bool  `json:"is_active" form:"is_active"`
}

func (r CreateEventRequest) ToModel() m.EventModel {
	mm := m.EventModel{
		CategoryID: r.CategoryID,
		Title:      r.Title,
		Year:       r.Year,
		IsActive:   true,
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	if r.IsActive != nil {
		mm.IsActive = *r.IsActive
	}
	return mm
}

type UpdateEventRequest struct {
	CategoryID *uint   `json:"category_id" form:"category_id"`
	Title      *string `json:"title" form:"title" validate:"omitempty,max=160"`
	Year       *uint   `json:"year" form:"year"`
	Order      *uint   `json:"order" form:"order"`
	IsActive   *bool   `json:"is_active" form:"is_active"`
}

func (r UpdateEventRequest) Apply(mm *m.EventModel) {
	if r.CategoryID != nil {
		mm.CategoryID = *r.CategoryID
	}
	if r.Title != nil {
		mm.Title = *r.Title
	}
	if r.Year != nil {
		mm.Year = *r.Year
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	if r.IsActive != nil {
		mm.IsActive = *r.IsActive
	}
}

type EventPublic struct {
	ID           uint   `json:"id"`
	CategoryID   uint   `json:"category_id"`
	CategorySlug string `json:"category_slug"`
	Title        string `json:"title"`
	Year         uint   `json:"year"`
	Order        uint   `json:"order"`
	PhotoCount   int    `json:"photo_count"`
}

type EventAdmin struct {
	EventPublic
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToEventPublic(mm m.EventModel, photoCount int) EventPublic {
	return EventPublic{
		ID:           mm.ID,
		CategoryID:   mm.CategoryID,
		CategorySlug: mm.Category.Slug,
		Title:        mm.Title,
		Year:         mm.Year,
		Order:        mm.SortOrder,
		PhotoCount:   photoCount,
	}
}

func ToEventAdmin(mm m.EventModel, photoCount int) EventAdmin {
	return EventAdmin{
		EventPublic: ToEventPublic(mm, photoCount),
		IsActive:    mm.IsActive,
		CreatedAt:   mm.CreatedAt,
		UpdatedAt:   mm.UpdatedAt,
	}
}

/* =========================================================
   PHOTOS
   ========================================================= */

type CreateEventPhotoRequest struct {
	Image   string `json:"image" form:"image"` // set from upload when multipart
	Caption string `json:"caption" form:"caption" validate:"max=200"`
	Order   *uint  `json:"order" form:"order"`
}

func (r CreateEventPhotoRequest) ToModel(eventID uint) m.EventPhotoModel {
	mm := m.EventPhotoModel{
		EventID: eventID,
		Image:   r.Image,
		Caption: r.Caption,
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	return mm
}

type UpdateEventPhotoRequest struct {
	Caption *string `json:"caption" form:"caption" validate:"omitempty,max=200"`
	Order   *uint   `json:"order" form:"order"`
}

func (r UpdateEventPhotoRequest) Apply(mm *m.EventPhotoModel) {
	if r.Caption != nil {
		mm.Caption = *r.Caption
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
}

type EventPhotoPublic struct {
	ID       uint   `json:"id"`
	EventID  uint   `json:"event_id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Order    uint   `json:"order"`
}

type EventPhotoAdmin struct {
	EventPhotoPublic
	Image string `json:"image"`
}

func ToPhotoPublic(mm m.EventPhotoModel) EventPhotoPublic {
	return EventPhotoPublic{
		ID:       mm.ID,
		EventID:  mm.EventID,
		ImageURL: helper.PublicImageURL(mm.Image),
		Caption:  mm.Caption,
		Order:    mm.SortOrder,
	}
}

func ToPhotoAdmin(mm m.EventPhotoModel) EventPhotoAdmin {
	return EventPhotoAdmin{EventPhotoPublic: ToPhotoPublic(mm), Image: mm.Image}
}

func ToPhotoPublicList(ms []m.EventPhotoModel) []EventPhotoPublic {
	out := make([]EventPhotoPublic, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToPhotoPublic(mm))
	}
	return out
}

func ToPhotoAdminList(ms []m.EventPhotoModel) []EventPhotoAdmin {
	out := make([]EventPhotoAdmin, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToPhotoAdmin(mm))
	}
	return out
}
