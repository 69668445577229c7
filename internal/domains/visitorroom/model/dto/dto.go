package dto

import (
	"time"

	"hms/internal/domains/visitorroom/model"
	"hms/shared"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateVisitorRoomRequest struct {
	HospitalID string         `json:"hospitalId" validate:"required"`
	RoomNumber string         `json:"roomNumber" validate:"required,max=50"`
	Capacity   int            `json:"capacity"   validate:"required,gt=0"`
	RoomType   model.RoomType `json:"roomType"   validate:"required,enum"`
	Fees       *float64       `json:"fees"       validate:"omitempty,gte=0"`
}

func (c *CreateVisitorRoomRequest) ToModel(user string) model.VisitorRoom {
	fees := float64(model.DefaultFees)
	if c.Fees != nil {
		fees = *c.Fees
	}

	return model.VisitorRoom{
		ID:         uuid.NewString(),
		HospitalID: c.HospitalID,
		RoomNumber: c.RoomNumber,
		Capacity:   c.Capacity,
		RoomType:   c.RoomType,
		Status:     model.StatusAvailable,
		Fees:       fees,
		Metadata:   gModel.NewMetadata(user, timezone.Now()),
	}
}

type ReserveRoomRequest struct {
	UserID string `json:"userId" validate:"required"`
	RoomID string `json:"roomId" validate:"required"`
}

type ReserveKidsAreaRequest struct {
	ReserveRoomRequest
	TimeSlot string `json:"timeSlot" validate:"required,max=50"`
}

type VisitorRoomResponse struct {
	ID           string  `json:"id"`
	HospitalID   string  `json:"hospitalId"`
	HospitalName string  `json:"hospitalName"`
	RoomNumber   string  `json:"roomNumber"`
	Capacity     int     `json:"capacity"`
	RoomType     string  `json:"roomType"`
	Status       string  `json:"status"`
	Fees         float64 `json:"fees"`
	ReservedBy   *string `json:"reservedBy"`
	gDto.Metadata
}

func (r *VisitorRoomResponse) FromModel(room model.VisitorRoom) {
	r.ID = room.ID
	r.HospitalID = room.HospitalID
	r.HospitalName = room.HospitalName
	r.RoomNumber = room.RoomNumber
	r.Capacity = room.Capacity
	r.RoomType = string(room.RoomType)
	r.Status = string(room.Status)
	r.Fees = room.Fees
	r.ReservedBy = room.ReservedBy
	r.Metadata.FromModel(room.Metadata)
}

type GetVisitorRoomsResponse struct {
	Rooms     []VisitorRoomResponse `json:"rooms"`
	TotalPage int                   `json:"totalPage"`
	TotalData int                   `json:"totalData"`
}

func (r *GetVisitorRoomsResponse) FromModels(rooms []model.VisitorRoom, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]VisitorRoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}

type ReservationResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   *string   `json:"userName"`
	TimeSlot   *string   `json:"timeSlot,omitempty"`
	ReservedAt time.Time `json:"reservedAt"`
}

func FromReservations(reservations []model.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(reservations))
	for i, item := range reservations {
		res[i] = ReservationResponse{
			ID:         item.ID,
			UserID:     item.UserID,
			UserName:   item.UserName,
			TimeSlot:   item.TimeSlot,
			ReservedAt: item.ReservedAt,
		}
	}

	return res
}
