package model

import (
	"time"

	"hms/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID               = "id"
	FieldUserName         = "user_name"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldRole             = "role"
	FieldCurrentCondition = "current_condition"
	FieldMedicalHistory   = "medical_history"
	FieldAssignedDoctor   = "assigned_doctor_id"
	FieldMedicineSchedule = "medicine_schedule"
	FieldTotalFees        = "total_fees"
	FieldLastLogin        = "last_login"
	FieldActive           = "active"
)

const (
	ServiceTableName  = "reserved_services"
	ServiceEntityName = "reserved_service"

	FieldServiceUserID     = "user_id"
	FieldServiceReservedAt = "reserved_at"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Service categories recorded in reserved_services.
const (
	CategoryICU         = "ICU"
	CategoryVisitorRoom = "Visitor Room"
	CategoryKidsArea    = "Kids Area"
	CategoryGeneral     = "General"
)

type User struct {
	ID                 string     `db:"id"`
	UserName           string     `db:"user_name"`
	FirstName          string     `db:"first_name"`
	LastName           string     `db:"last_name"`
	Email              *string    `db:"email"`
	Gender             string     `db:"gender"`
	Phone              string     `db:"phone"`
	Password           string     `db:"password"`
	Role               string     `db:"role"`
	CurrentCondition   string     `db:"current_condition"`
	AdmissionDate      *time.Time `db:"admission_date"`
	MedicalHistory     string     `db:"medical_history"`
	AssignedDoctorID   *string    `db:"assigned_doctor_id"`
	MedicineSchedule   string     `db:"medicine_schedule"`
	TotalFees          float64    `db:"total_fees"`
	DoctorDepartment   string     `db:"doctor_department"`
	AssignedHospitalID *string    `db:"assigned_hospital_id"`
	LastLogin          *time.Time `db:"last_login"`
	Active             bool       `db:"active"`
	model.Metadata
}

// ReservedService is one entry of a user's reserved services, charged or not.
type ReservedService struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	ResourceID string    `db:"resource_id"`
	Category   string    `db:"category"`
	Fee        float64   `db:"fee"`
	ReservedAt time.Time `db:"reserved_at"`
}
