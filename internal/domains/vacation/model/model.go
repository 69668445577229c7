package model

import (
	"time"

	"hms/shared/model"
)

const (
	TableName  = "vacations"
	EntityName = "vacation"

	FieldID         = "id"
	FieldEmployeeID = "employee_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldStatus     = "status"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}

	return false
}

type Vacation struct {
	ID           string    `db:"id"`
	EmployeeID   string    `db:"employee_id"`
	EmployeeName string    `db:"employee_name" table:"users" column:"user_name"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	Status       Status    `db:"status"`
	model.Metadata
}

func (Vacation) GetJoinQuery() string {
	return "JOIN users ON users.id = vacations.employee_id"
}
