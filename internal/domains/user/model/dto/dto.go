package dto

import (
	"time"

	hospitalDto "hms/internal/domains/hospital/model/dto"
	"hms/internal/domains/user/model"
	"hms/shared"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	UserName           string  `json:"userName"           validate:"required,min=2,max=50"`
	FirstName          string  `json:"firstName"          validate:"required,min=2,max=50"`
	LastName           string  `json:"lastName"           validate:"required,min=2,max=50"`
	Email              string  `json:"email"              validate:"omitempty,email"`
	Gender             string  `json:"gender"             validate:"required,oneof=Male Female"`
	Phone              string  `json:"phone"              validate:"required,min=2,max=30"`
	Password           string  `json:"password"           validate:"required,min=6"`
	Role               string  `json:"role"               validate:"omitempty,oneof=Patient Doctor Admin Manager Nurse Cleaner Receptionist"`
	DoctorDepartment   string  `json:"doctorDepartment"   validate:"omitempty,max=100"`
	AssignedHospitalID *string `json:"assignedHospitalId" validate:"omitempty,uuid"`
}

// ToModel builds an active account for role; role overrides req.Role.
func (r *CreateUserRequest) ToModel(user, role, hashedPassword string) model.User {
	var email *string
	if r.Email != "" {
		email = &r.Email
	}

	return model.User{
		ID:                 uuid.NewString(),
		UserName:           r.UserName,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              email,
		Gender:             r.Gender,
		Phone:              r.Phone,
		Password:           hashedPassword,
		Role:               role,
		DoctorDepartment:   r.DoctorDepartment,
		AssignedHospitalID: r.AssignedHospitalID,
		Active:             true,
		Metadata:           gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateMedicalHistoryRequest struct {
	MedicalHistory   string `db:"medical_history"   json:"medicalHistory"   validate:"omitempty,max=5000"`
	CurrentCondition string `db:"current_condition" json:"currentCondition" validate:"omitempty,max=1000"`
}

type UpdateMedicineScheduleRequest struct {
	MedicineSchedule string `db:"medicine_schedule" json:"medicineSchedule" validate:"required,max=2000"`
}

type UserResponse struct {
	ID                 string     `json:"id"`
	UserName           string     `json:"userName"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Email              *string    `json:"email"`
	Gender             string     `json:"gender"`
	Phone              string     `json:"phone"`
	Role               string     `json:"role"`
	DoctorDepartment   string     `json:"doctorDepartment,omitempty"`
	AssignedHospitalID *string    `json:"assignedHospitalId,omitempty"`
	AssignedDoctorID   *string    `json:"assignedDoctorId,omitempty"`
	LastLogin          *time.Time `json:"lastLogin"`
	Active             bool       `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.UserName = user.UserName
	r.FirstName = user.FirstName
	r.LastName = user.LastName
	r.Email = user.Email
	r.Gender = user.Gender
	r.Phone = user.Phone
	r.Role = user.Role
	r.DoctorDepartment = user.DoctorDepartment
	r.AssignedHospitalID = user.AssignedHospitalID
	r.AssignedDoctorID = user.AssignedDoctorID
	r.LastLogin = user.LastLogin
	r.Active = user.Active
	r.Metadata.FromModel(user.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetUsersResponse) FromModels(users []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}
}

type PatientHealthResponse struct {
	PatientID        string     `json:"patientId"`
	CurrentCondition string     `json:"currentCondition"`
	AdmissionDate    *time.Time `json:"admissionDate"`
}

type MedicalHistoryResponse struct {
	PatientID        string `json:"patientId"`
	MedicalHistory   string `json:"medicalHistory"`
	CurrentCondition string `json:"currentCondition"`
}

type FeesResponse struct {
	TotalFees float64 `json:"totalFees"`
}

type MedicineScheduleResponse struct {
	MedicineSchedule string `json:"medicineSchedule"`
}

type ServiceResponse struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resourceId"`
	Category   string    `json:"category"`
	Fee        float64   `json:"fee"`
	ReservedAt time.Time `json:"reservedAt"`
}

func FromServices(models []model.ReservedService) []ServiceResponse {
	res := make([]ServiceResponse, len(models))
	for i, mod := range models {
		res[i] = ServiceResponse{
			ID:         mod.ID,
			ResourceID: mod.ResourceID,
			Category:   mod.Category,
			Fee:        mod.Fee,
			ReservedAt: mod.ReservedAt,
		}
	}

	return res
}

type ManagerHospitalsResponse struct {
	Manager   UserResponse                   `json:"manager"`
	Hospitals []hospitalDto.HospitalResponse `json:"hospitals"`
}
