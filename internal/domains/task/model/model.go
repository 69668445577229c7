package model

import (
	"time"

	"hms/shared/model"
)

const (
	TableName  = "tasks"
	EntityName = "task"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmployeeID = "employee_id"
	FieldDeadline   = "deadline"
	FieldPriority   = "priority"
	FieldStatus     = "status"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}

	return false
}

type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}

	return false
}

type Task struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	EmployeeID   string    `db:"employee_id"`
	EmployeeName string    `db:"employee_name" table:"users" column:"user_name"`
	EmployeeRole string    `db:"employee_role" table:"users" column:"role"`
	Deadline     time.Time `db:"deadline"`
	Priority     Priority  `db:"priority"`
	Status       Status    `db:"status"`
	model.Metadata
}

func (Task) GetJoinQuery() string {
	return "JOIN users ON users.id = tasks.employee_id"
}
