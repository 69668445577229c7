package dto

import (
	"hms/shared/constant"
	"hms/shared/model"
	"hms/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
	CreatedBy  string `json:"createdBy,omitempty"`
	ModifiedBy string `json:"modifiedBy,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = timezone.Format(source.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(source.ModifiedAt, constant.DateFormat)
	m.CreatedBy = source.CreatedBy
	m.ModifiedBy = source.ModifiedBy
}
