package dto

import (
	"time"

	"hms/internal/domains/shift/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateShiftRequest struct {
	EmployeeID string    `json:"employeeId" validate:"required"`
	StartTime  time.Time `json:"startTime"  validate:"required"`
	EndTime    time.Time `json:"endTime"    validate:"required,gtfield=StartTime"`
	BreakTime  string    `json:"breakTime"  validate:"omitempty,max=50"`
}

func (c *CreateShiftRequest) ToModel(user string) model.Shift {
	breakTime := c.BreakTime
	if breakTime == "" {
		breakTime = model.DefaultBreakTime
	}

	return model.Shift{
		ID:         uuid.NewString(),
		EmployeeID: c.EmployeeID,
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
		BreakTime:  breakTime,
		Metadata:   gModel.NewMetadata(user, timezone.Now()),
	}
}

type ShiftResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BreakTime    string `json:"breakTime"`
	gDto.Metadata
}

func (r *ShiftResponse) FromModel(shift model.Shift) {
	r.ID = shift.ID
	r.EmployeeID = shift.EmployeeID
	r.EmployeeName = shift.EmployeeName
	r.StartTime = timezone.Format(shift.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(shift.EndTime, constant.DateFormat)
	r.BreakTime = shift.BreakTime
	r.Metadata.FromModel(shift.Metadata)
}

func FromModels(shifts []model.Shift) []ShiftResponse {
	res := make([]ShiftResponse, len(shifts))
	for i, shift := range shifts {
		res[i].FromModel(shift)
	}

	return res
}
