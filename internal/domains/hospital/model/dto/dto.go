package dto

import (
	"mime/multipart"

	feedbackDto "hms/internal/domains/feedback/model/dto"
	"hms/internal/domains/hospital/model"
	"hms/shared"
	gDto "hms/shared/dto"
	"hms/shared/geo"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateHospitalRequest struct {
	Name          string   `json:"name"          validate:"required,max=150"`
	Address       string   `json:"address"       validate:"required,max=255"`
	Email         string   `json:"email"         validate:"required,email,max=150"`
	Longitude     *float64 `json:"longitude"     validate:"required,gte=-180,lte=180"`
	Latitude      *float64 `json:"latitude"      validate:"required,gte=-90,lte=90"`
	ContactNumber string   `json:"contactNumber" validate:"required,max=30"`
}

func (c *CreateHospitalRequest) ToModel(user string) model.Hospital {
	return model.Hospital{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Address:       c.Address,
		Email:         c.Email,
		Longitude:     *c.Longitude,
		Latitude:      *c.Latitude,
		ContactNumber: c.ContactNumber,
		Status:        model.StatusActive,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type AssignManagerRequest struct {
	ManagerID string `json:"managerId" validate:"required"`
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type HospitalResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	Email             string   `json:"email"`
	Longitude         float64  `json:"longitude"`
	Latitude          float64  `json:"latitude"`
	ContactNumber     string   `json:"contactNumber"`
	Status            string   `json:"status"`
	AssignedManagerID *string  `json:"assignedManagerId"`
	BackupManagerID   *string  `json:"backupManagerId"`
	Image             string   `json:"image"`
	DistanceKM        *float64 `json:"distanceKm,omitempty"`
	gDto.Metadata
}

func (r *HospitalResponse) FromModel(model model.Hospital) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Email = model.Email
	r.Longitude = model.Longitude
	r.Latitude = model.Latitude
	r.ContactNumber = model.ContactNumber
	r.Status = string(model.Status)
	r.AssignedManagerID = model.AssignedManagerID
	r.BackupManagerID = model.BackupManagerID
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type HospitalDetailResponse struct {
	HospitalResponse
	Feedbacks []feedbackDto.FeedbackResponse `json:"feedbacks"`
}

type GetHospitalsResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	TotalPage int                `json:"totalPage"`
	TotalData int                `json:"totalData"`
}

func (r *GetHospitalsResponse) FromModels(models []model.Hospital, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hospitals = make([]HospitalResponse, len(models))
	for i, mod := range models {
		r.Hospitals[i].FromModel(mod)
	}
}

// FromRanked keeps the nearest-first order of ranked and pages it in memory.
func (r *GetHospitalsResponse) FromRanked(ranked []geo.Ranked[model.Hospital], params gDto.QueryParams) {
	r.TotalData = len(ranked)
	r.TotalPage = shared.CalculateTotalPage(len(ranked), params.Limit)

	start, end := 0, len(ranked)
	if params.Limit > 0 {
		start = min(max(params.Page-1, 0)*params.Limit, len(ranked))
		end = min(start+params.Limit, len(ranked))
	}

	r.Hospitals = make([]HospitalResponse, end-start)
	for i, item := range ranked[start:end] {
		distance := item.DistanceKM

		r.Hospitals[i].FromModel(item.Item)
		r.Hospitals[i].DistanceKM = &distance
	}
}

type RatingResponse struct {
	HospitalID     string  `json:"hospitalId"`
	Name           string  `json:"name"`
	AverageRating  float64 `json:"averageRating"`
	TotalFeedbacks int     `json:"totalFeedbacks"`
}

func FromRatings(models []model.Rating) []RatingResponse {
	res := make([]RatingResponse, len(models))
	for i, mod := range models {
		res[i] = RatingResponse{
			HospitalID:     mod.HospitalID,
			Name:           mod.Name,
			AverageRating:  mod.AverageRating,
			TotalFeedbacks: mod.TotalFeedbacks,
		}
	}

	return res
}

type ImageResponse struct {
	Image string `json:"image"`
}
