package dto

import (
	"time"

	m "aidjourney_backend/internals/features/sitecontent/news/model"
	helper "aidjourney_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type CreateNewsRequest struct {
	Title     string `json:"title" form:"title" validate:"required,max=180"`
	Slug      string `json:"slug" form:"slug" validate:"omitempty,max=200,nospace"`
	Image     string `json:"image" form:"image"` // set from upload when multipart
	Summary   string `json:"summary" form:"summary"`
	Body      string `json:"body" form:"body"`
	Date      string `json:"date" form:"date" validate:"required"`
	Published *bool  `json:"published" form:"published"`
	Tag       string `json:"tag" form:"tag" validate:"max=60"`
}

// ParseDate reports whether the date field is a valid YYYY-MM-DD value.
func (r CreateNewsRequest) ParseDate() (time.Time, bool) {
	t, err := time.Parse(dateLayout, r.Date)
	return t, err == nil
}

func (r CreateNewsRequest) ToModel(date time.Time) m.NewsModel {
	mm := m.NewsModel{
		Title:     r.Title,
		Slug:      r.Slug,
		Image:     r.Image,
		Summary:   r.Summary,
		Body:      r.Body,
		Date:      date,
		Published: true,
		Tag:       r.Tag,
	}
	if r.Published != nil {
		mm.Published = *r.Published
	}
	return mm
}

// Slug stays fixed after create; a title edit does not move the URL.
type UpdateNewsRequest struct {
	Title     *string `json:"title" form:"title" validate:"omitempty,max=180"`
	Image     *string `json:"image" form:"image"`
	Summary   *string `json:"summary" form:"summary"`
	Body      *string `json:"body" form:"body"`
	Date      *string `json:"date" form:"date"`
	Published *bool   `json:"published" form:"published"`
	Tag       *string `json:"tag" form:"tag" validate:"omitempty,max=60"`
}

func (r UpdateNewsRequest) Apply(mm *m.NewsModel) bool {
	if r.Title != nil {
		mm.Title = *r.Title
	}
	if r.Image != nil {
		mm.Image = *r.Image
	}
	if r.Summary != nil {
		mm.Summary = *r.Summary
	}
	if r.Body != nil {
		mm.Body = *r.Body
	}
	if r.Date != nil {
		t, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return false
		}
		mm.Date = t
	}
	if r.Published != nil {
		mm.Published = *r.Published
	}
	if r.Tag != nil {
		mm.Tag = *r.Tag
	}
	return true
}

type NewsPublic struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url"`
	Summary  string `json:"summary"`
	Body     string `json:"body"`
	Date     string `json:"date"`
	Tag      string `json:"tag"`
}

type NewsAdmin struct {
	NewsPublic
	Image     string    `json:"image"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPublic(mm m.NewsModel) NewsPublic {
	return NewsPublic{
		ID:       mm.ID,
		Title:    mm.Title,
		Slug:     mm.Slug,
		ImageURL: helper.PublicImageURL(mm.Image),
		Summary:  mm.Summary,
		Body:     mm.Body,
		Date:     mm.Date.Format(dateLayout),
		Tag:      mm.Tag,
	}
}

func ToAdmin(mm m.NewsModel) NewsAdmin {
	return NewsAdmin{
		NewsPublic: ToPublic(mm),
		Image:      mm.Image,
		Published:  mm.Published,
		CreatedAt:  mm.CreatedAt,
		UpdatedAt:  mm.UpdatedAt,
	}
}

func ToPublicList(ms []m.NewsModel) []NewsPublic {
	out := make([]NewsPublic, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToPublic(mm))
	}
	return out
}

func ToAdminList(ms []m.NewsModel) []NewsAdmin {
	out := make([]NewsAdmin, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToAdmin(mm))
	}
	return out
}
