package dto

import (
	"time"

	m "aidjourney_backend/internals/features/sitecontent/impact/model"
)

type CreateImpactStatRequest struct {
	Label  string `json:"label" form:"label" validate:"required,max=120"`
	Value  *uint  `json:"value" form:"value" validate:"required"`
	Suffix string `json:"suffix" form:"suffix" validate:"max=8"`
	Order  *uint  `json:"order" form:"order"`
}

func (r CreateImpactStatRequest) ToModel() m.ImpactStatModel {
	mm := m.ImpactStatModel{
		Label:  r.Label,
		Suffix: r.Suffix,
	}
	if r.Value != nil {
		mm.Value = *r.Value
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
	return mm
}

type UpdateImpactStatRequest struct {
	Label  *string `json:"label" form:"label" validate:"omitempty,max=120"`
	Value  *uint   `json:"value" form:"value"`
	Suffix *string `json:"suffix" form:"suffix" validate:"omitempty,max=8"`
	Order  *uint   `json:"order" form:"order"`
}

func (r UpdateImpactStatRequest) Apply(mm *m.ImpactStatModel) {
	if r.Label != nil {
		mm.Label = *r.Label
	}
	if r.Value != nil {
		mm.Value = *r.Value
	}
	if r.Suffix != nil {
		mm.Suffix = *r.Suffix
	}
	if r.Order != nil {
		mm.SortOrder = *r.Order
	}
}

type ImpactStatPublic struct {
	ID     uint   `json:"id"`
	Label  string `json:"label"`
	Value  uint   `json:"value"`
	Suffix string `json:"suffix"`
	Order  uint   `json:"order"`
}

type ImpactStatAdmin struct {
	ImpactStatPublic
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPublic(mm m.ImpactStatModel) ImpactStatPublic {
	return ImpactStatPublic{
		ID:     mm.ID,
		Label:  mm.Label,
		Value:  mm.Value,
		Suffix: mm.Suffix,
		Order:  mm.SortOrder,
	}
}

func ToAdmin(mm m.ImpactStatModel) ImpactStatAdmin {
	return ImpactStatAdmin{
		ImpactStatPublic: ToPublic(mm),
		CreatedAt:        mm.CreatedAt,
		UpdatedAt:        mm.UpdatedAt,
	}
}

func ToPublicList(ms []m.ImpactStatModel) []ImpactStatPublic {
	out := make([]ImpactStatPublic, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToPublic(mm))
	}
	return out
}

func ToAdminList(ms []m.ImpactStatModel) []ImpactStatAdmin {
	out := make([]ImpactStatAdmin, 0, len(ms))
	for _, mm := range ms {
		out = append(out, ToAdmin(mm))
	}
	return out
}
