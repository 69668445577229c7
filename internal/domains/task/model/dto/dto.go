package dto

import (
	"time"

	"hms/internal/domains/task/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Name       string         `json:"name"       validate:"required,max=255"`
	EmployeeID string         `json:"employeeId" validate:"required"`
	Deadline   time.Time      `json:"deadline"   validate:"required"`
	Priority   model.Priority `json:"priority"   validate:"required,enum"`
	Status     model.Status   `json:"status"     validate:"omitempty,enum"`
}

func (c *CreateTaskRequest) ToModel(user string) model.Task {
	status := c.Status
	if status == "" {
		status = model.StatusNotStarted
	}

	return model.Task{
		ID:         uuid.NewString(),
		Name:       c.Name,
		EmployeeID: c.EmployeeID,
		Deadline:   c.Deadline,
		Priority:   c.Priority,
		Status:     status,
		Metadata:   gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateTaskStatusRequest struct {
	Status model.Status `json:"status" validate:"required,enum"`
}

type TaskResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	EmployeeRole string `json:"employeeRole"`
	Deadline     string `json:"deadline"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(task model.Task) {
	r.ID = task.ID
	r.Name = task.Name
	r.EmployeeID = task.EmployeeID
	r.EmployeeName = task.EmployeeName
	r.EmployeeRole = task.EmployeeRole
	r.Deadline = timezone.Format(task.Deadline, constant.DateFormat)
	r.Priority = string(task.Priority)
	r.Status = string(task.Status)
	r.Metadata.FromModel(task.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetTasksResponse) FromModels(tasks []model.Task, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		r.Tasks[i].FromModel(task)
	}
}
