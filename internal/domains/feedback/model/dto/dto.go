package dto

import (
	"hms/internal/domains/feedback/model"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	Rating  *int   `json:"rating"  validate:"required,gte=0,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

func (c *CreateFeedbackRequest) ToModel(hospitalID, user string) model.Feedback {
	return model.Feedback{
		ID:         uuid.NewString(),
		HospitalID: hospitalID,
		UserID:     user,
		Rating:     *c.Rating,
		Comment:    c.Comment,
		Metadata:   gModel.NewMetadata(user, timezone.Now()),
	}
}

type FeedbackResponse struct {
	ID         string  `json:"id"`
	HospitalID string  `json:"hospitalId"`
	UserID     string  `json:"userId"`
	UserName   *string `json:"userName,omitempty"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment"`
	gDto.Metadata
}

func (r *FeedbackResponse) FromModel(model model.Feedback) {
	r.ID = model.ID
	r.HospitalID = model.HospitalID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Feedback) []FeedbackResponse {
	res := make([]FeedbackResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
