package dto

import (
	"time"

	m "aidjourney_backend/internals/features/sitecontent/contact/model"
)

/* =========================================================
   CONTACT MESSAGES
   ========================================================= */

type CreateContactMessageRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=120"`
	Email   string `json:"email" form:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" form:"phone" validate:"max=40"`
	Subject string `json:"subject" form:"subject" validate:"max=200"`
	Message string `json:"message" form:"message" validate:"required"`
}

func (r CreateContactMessageRequest) ToModel() m.ContactMessageModel {
	return m.ContactMessageModel{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type ContactMessageAdmin struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMessageAdmin(mm m.ContactMessageModel) ContactMessageAdmin {
	return ContactMessageAdmin{
		ID:        mm.ID,
		Name:      mm.Name,
		Email:     mm.Email,
		Phone:     mm.Phone,
		Subject:   mm.Subject,
		Message:   mm.Message,
		CreatedAt: mm.CreatedAt,
	}
}

func ToMessageAdminList(ms []m.ContactMessageModel) []ContactMessageAdmin {
	out := make([]ContactMessageAdmin, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToMessageAdmin(mm))
	}
	return out
}

/* =========================================================
   CONTACT INFO (singleton)
   ========================================================= */

type UpdateContactInfoRequest struct {
	Email   *string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Phone   *string `json:"phone" form:"phone" validate:"omitempty,max=40"`
	Address *string `json:"address" form:"address"`
	Hours   *string `json:"hours" form:"hours" validate:"omitempty,max=200"`
}

func (r UpdateContactInfoRequest) Apply(mm *m.ContactInfoModel) {
	if r.Email != nil {
		mm.Email = *r.Email
	}
	if r.Phone != nil {
		mm.Phone = *r.Phone
	}
	if r.Address != nil {
		mm.Address = *r.Address
	}
	if r.Hours != nil {
		mm.Hours = *r.Hours
	}
}

type ContactInfoPublic struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

type ContactInfoAdmin struct {
	ID uint `json:"id"`
	ContactInfoPublic
	UpdatedAt time.Time `json:"updated_at"`
}

func ToInfoPublic(mm m.ContactInfoModel) ContactInfoPublic {
	return ContactInfoPublic{
		Email:   mm.Email,
		Phone:   mm.Phone,
		Address: mm.Address,
		Hours:   mm.Hours,
	}
}

func ToInfoAdmin(mm m.ContactInfoModel) ContactInfoAdmin {
	return ContactInfoAdmin{
		ID:                mm.ID,
		ContactInfoPublic: ToInfoPublic(mm),
		UpdatedAt:         mm.UpdatedAt,
	}
}
