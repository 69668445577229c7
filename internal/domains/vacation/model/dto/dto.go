package dto

import (
	"time"

	"hms/internal/domains/vacation/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateVacationRequest struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate"   validate:"required,gtefield=StartDate"`
}

func (c *CreateVacationRequest) ToModel(employeeID string) model.Vacation {
	return model.Vacation{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		Status:     model.StatusPending,
		Metadata:   gModel.NewMetadata(employeeID, timezone.Now()),
	}
}

type DecideVacationRequest struct {
	Status model.Status `json:"status" validate:"required,enum,ne=Pending"`
}

type VacationResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *VacationResponse) FromModel(vacation model.Vacation) {
	r.ID = vacation.ID
	r.EmployeeID = vacation.EmployeeID
	r.EmployeeName = vacation.EmployeeName
	r.StartDate = timezone.Format(vacation.StartDate, constant.DateFormat)
	r.EndDate = timezone.Format(vacation.EndDate, constant.DateFormat)
	r.Status = string(vacation.Status)
	r.Metadata.FromModel(vacation.Metadata)
}

type GetVacationsResponse struct {
	Vacations []VacationResponse `json:"vacations"`
	TotalPage int                `json:"totalPage"`
	TotalData int                `json:"totalData"`
}

func (r *GetVacationsResponse) FromModels(vacations []model.Vacation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vacations = make([]VacationResponse, len(vacations))
	for i, vacation := range vacations {
		r.Vacations[i].FromModel(vacation)
	}
}
