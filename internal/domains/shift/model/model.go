package model

import (
	"time"

	"hms/shared/model"
)

const (
	TableName  = "shifts"
	EntityName = "shift"

	FieldID         = "id"
	FieldEmployeeID = "employee_id"
	FieldStartTime  = "start_time"

	DefaultBreakTime = "30 mins"
)

type Shift struct {
	ID           string    `db:"id"`
	EmployeeID   string    `db:"employee_id"`
	EmployeeName string    `db:"employee_name" table:"users" column:"user_name"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	BreakTime    string    `db:"break_time"`
	model.Metadata
}

func (Shift) GetJoinQuery() string {
	return "JOIN users ON users.id = shifts.employee_id"
}
