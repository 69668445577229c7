package model

import (
	"slices"

	"hms/shared/geo"
	"hms/shared/model"
)

const (
	TableName  = "icu_rooms"
	EntityName = "icu"

	FieldID             = "id"
	FieldHospitalID     = "hospital_id"
	FieldSpecialization = "specialization"
	FieldStatus         = "status"
	FieldFees           = "fees"
	FieldIsReserved     = "is_reserved"
	FieldReservedBy     = "reserved_by"

	// ArgCurrentStatus binds the expected status in compare-and-set filters.
	ArgCurrentStatus = "current_status"

	DefaultFees = 100
)

type Status string

const (
	StatusOccupied    Status = "Occupied"
	StatusAvailable   Status = "Available"
	StatusToBeCleaned Status = "To Be Cleaned"
	StatusCleaned     Status = "Cleaned"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOccupied, StatusAvailable, StatusToBeCleaned, StatusCleaned:
		return true
	default:
		return false
	}
}

type Specialization string

var Specializations = []Specialization{
	"Medical ICU",
	"Surgical ICU",
	"Cardiac ICU",
	"Neonatal ICU",
	"Pediatric ICU",
	"Neurological ICU",
	"Trauma ICU",
	"Burn ICU",
	"Respiratory ICU",
	"Coronary Care Unit",
	"Oncology ICU",
	"Transplant ICU",
	"Geriatric ICU",
	"Post-Anesthesia Care Unit",
	"Obstetric ICU",
	"Infectious Disease ICU",
}

func (s Specialization) IsValid() bool {
	return slices.Contains(Specializations, s)
}

// ICU is an icu_rooms row joined with the hospital it belongs to.
type ICU struct {
	ID                string         `db:"id"`
	HospitalID        string         `db:"hospital_id"`
	HospitalName      string         `db:"hospital_name"      table:"hospitals" column:"name"`
	HospitalAddress   string         `db:"hospital_address"   table:"hospitals" column:"address"`
	HospitalLongitude float64        `db:"hospital_longitude" table:"hospitals" column:"longitude"`
	HospitalLatitude  float64        `db:"hospital_latitude"  table:"hospitals" column:"latitude"`
	Specialization    Specialization `db:"specialization"`
	Status            Status         `db:"status"`
	Fees              float64        `db:"fees"`
	IsReserved        bool           `db:"is_reserved"`
	ReservedBy        *string        `db:"reserved_by"`
	model.Metadata
}

func (ICU) GetJoinQuery() string {
	return "JOIN hospitals ON hospitals.id = icu_rooms.hospital_id"
}

func (i ICU) Location() geo.Point {
	return geo.Point{Longitude: i.HospitalLongitude, Latitude: i.HospitalLatitude}
}
