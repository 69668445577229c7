package dto

import (
	"hms/internal/domains/icu/model"
	"hms/shared"
	gDto "hms/shared/dto"
	"hms/shared/geo"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

// RegisterICURequest leaves specialization and status unchecked for presence;
// the service reports both together.
type RegisterICURequest struct {
	HospitalID     string               `json:"hospitalId"     validate:"required"`
	Specialization model.Specialization `json:"specialization" validate:"omitempty,enum"`
	Status         model.Status         `json:"status"         validate:"omitempty,enum"`
	Fees           *float64             `json:"fees"           validate:"omitempty,gte=0"`
}

func (r *RegisterICURequest) ToModel(user string) model.ICU {
	fees := float64(model.DefaultFees)
	if r.Fees != nil {
		fees = *r.Fees
	}

	return model.ICU{
		ID:             uuid.NewString(),
		HospitalID:     r.HospitalID,
		Specialization: r.Specialization,
		Status:         r.Status,
		Fees:           fees,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateICURequest struct {
	Specialization model.Specialization `db:"specialization" json:"specialization" validate:"omitempty,enum"`
	Status         model.Status         `db:"status"         json:"status"         validate:"omitempty,enum"`
	Fees           *float64             `db:"fees"           json:"fees"           validate:"omitempty,gte=0"`
}

type ReserveICURequest struct {
	UserID string `json:"userId" validate:"required"`
	ICUID  string `json:"icuId"  validate:"required"`
}

type HospitalSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type ICUResponse struct {
	ID             string          `json:"id"`
	Hospital       HospitalSummary `json:"hospital"`
	Specialization string          `json:"specialization"`
	Status         string          `json:"status"`
	Fees           float64         `json:"fees"`
	IsReserved     bool            `json:"isReserved"`
	ReservedBy     *string         `json:"reservedBy"`
	gDto.Metadata
}

func (r *ICUResponse) FromModel(model model.ICU) {
	r.ID = model.ID
	r.Hospital = HospitalSummary{
		ID:      model.HospitalID,
		Name:    model.HospitalName,
		Address: model.HospitalAddress,
	}
	r.Specialization = string(model.Specialization)
	r.Status = string(model.Status)
	r.Fees = model.Fees
	r.IsReserved = model.IsReserved
	r.ReservedBy = model.ReservedBy
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.ICU) []ICUResponse {
	res := make([]ICUResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetICUsResponse struct {
	ICUs      []ICUResponse `json:"icus"`
	TotalPage int           `json:"totalPage"`
	TotalData int           `json:"totalData"`
}

func (r *GetICUsResponse) FromModels(models []model.ICU, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.ICUs = FromModels(models)
}

type AvailableICUResponse struct {
	ICUResponse
	DistanceKM float64 `json:"distanceKm"`
}

func FromRanked(ranked []geo.Ranked[model.ICU]) []AvailableICUResponse {
	res := make([]AvailableICUResponse, len(ranked))
	for i, item := range ranked {
		res[i].FromModel(item.Item)
		res[i].DistanceKM = item.DistanceKM
	}

	return res
}
