package model

import (
	"hms/shared/geo"
	"hms/shared/model"
)

const (
	TableName  = "hospitals"
	EntityName = "hospital"

	FieldID              = "id"
	FieldName            = "name"
	FieldAddress         = "address"
	FieldEmail           = "email"
	FieldLongitude       = "longitude"
	FieldLatitude        = "latitude"
	FieldContactNumber   = "contact_number"
	FieldStatus          = "status"
	FieldAssignedManager = "assigned_manager_id"
	FieldBackupManager   = "backup_manager_id"
	FieldImage           = "image"
)

type Status string

const (
	StatusActive  Status = "Active"
	StatusBlocked Status = "Blocked"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusBlocked
}

type Hospital struct {
	ID                string  `db:"id"`
	Name              string  `db:"name"`
	Address           string  `db:"address"`
	Email             string  `db:"email"`
	Longitude         float64 `db:"longitude"`
	Latitude          float64 `db:"latitude"`
	ContactNumber     string  `db:"contact_number"`
	Status            Status  `db:"status"`
	AssignedManagerID *string `db:"assigned_manager_id"`
	BackupManagerID   *string `db:"backup_manager_id"`
	Image             string  `db:"image"`
	model.Metadata
}

func (h Hospital) Location() geo.Point {
	return geo.Point{Longitude: h.Longitude, Latitude: h.Latitude}
}

// Rating aggregates the feedbacks left for one hospital.
type Rating struct {
	HospitalID     string `db:"hospital_id"`
	Name           string `db:"name"`
	AverageRating  float64 `db:"average_rating"`
	TotalFeedbacks int `db:"total_feedbacks"`
}
