package dto

import (
	"time"

	m "aidjourney_backend/internals/features/sitecontent/banner/model"
	helper "aidjourney_backend/internals/helpers"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateBannerRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=120"`
	Subtitle    string `json:"subtitle" form:"subtitle" validate:"max=200"`
	Image       string `json:"image" form:"image"` // set from upload when multipart
	MobileImage string `json:"mobile_image" form:"mobile_image"`
	CtaLabel    string `json:"cta_label" form:"cta_label" validate:"max=60"`
	CtaHref     string `json:"cta_href" form:"cta_href" validate:"omitempty,nospace,max=200"`
	Order       *uint  `json:"order" form:"order"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
}

func (r CreateBannerRequest) ToModel() m.BannerModel {
	mm := m.BannerModel{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Image:       r.Image,
		MobileImage: r.MobileImage,
		CtaLabel:    r.CtaLabel,
		CtaHref:     r.CtaHref,
		IsActive:    true,
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	if r.IsActive != nil {
		mm.IsActive = *r.IsActive
	}
	return mm
}

type UpdateBannerRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,max=120"`
	Subtitle    *string `json:"subtitle" form:"subtitle" validate:"omitempty,max=200"`
	Image       *string `json:"image" form:"image"`
	MobileImage *string `json:"mobile_image" form:"mobile_image"`
	CtaLabel    *string `json:"cta_label" form:"cta_label" validate:"omitempty,max=60"`
	CtaHref     *string `json:"cta_href" form:"cta_href" validate:"omitempty,nospace,max=200"`
	Order       *uint   `json:"order" form:"order"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
}

func (r UpdateBannerRequest) Apply(mm *m.BannerModel) {
	if r.Title != nil {
		mm.Title = *r.Title
	}
	if r.Subtitle != nil {
		mm.Subtitle = *r.Subtitle
	}
	if r.Image != nil {
		mm.Image = *r.Image
	}
	if r.MobileImage != nil {
		mm.MobileImage = *r.MobileImage
	}
	if r.CtaLabel != nil {
		mm.CtaLabel = *r.CtaLabel
	}
	if r.CtaHref != nil {
		mm.CtaHref = *r.CtaHref
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	if r.IsActive != nil {
		mm.IsActive = *r.IsActive
	}
}

/* =========================================================
   Projections — admin is a superset of public
   ========================================================= */

type BannerPublic struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	ImageURL       string `json:"image_url"`
	MobileImageURL string `json:"mobile_image_url"`
	CtaLabel       string `json:"cta_label"`
	CtaHref        string `json:"cta_href"`
	Order          uint   `json:"order"`
}

type BannerAdmin struct {
	BannerPublic
	Image       string    `json:"image"`
	MobileImage string    `json:"mobile_image"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToPublic(mm m.BannerModel) BannerPublic {
	return BannerPublic{
		ID:             mm.ID,
		Title:          mm.Title,
		Subtitle:       mm.Subtitle,
		ImageURL:       helper.PublicImageURL(mm.Image),
		MobileImageURL: helper.PublicImageURL(mm.MobileImage),
		CtaLabel:       mm.CtaLabel,
		CtaHref:        mm.CtaHref,
		Order:          mm.SortOrder,
	}
}

func ToAdmin(mm m.BannerModel) BannerAdmin {
	return BannerAdmin{
		BannerPublic: ToPublic(mm),
		Image:        mm.Image,
		MobileImage:  mm.MobileImage,
		IsActive:     mm.IsActive,
		CreatedAt:    mm.CreatedAt,
		UpdatedAt:    mm.UpdatedAt,
	}
}

func ToPublicList(ms []m.BannerModel) []BannerPublic {
	out := make([]BannerPublic, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToPublic(mm))
	}
	return out
}

func ToAdminList(ms []m.BannerModel) []BannerAdmin {
	out := make([]BannerAdmin, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToAdmin(mm))
	}
	return out
}
