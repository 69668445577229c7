package model

import (
	"time"

	"hms/shared/model"
)

const (
	TableName  = "visitor_rooms"
	EntityName = "visitor_room"

	FieldID         = "id"
	FieldHospitalID = "hospital_id"
	FieldRoomNumber = "room_number"
	FieldCapacity   = "capacity"
	FieldRoomType   = "room_type"
	FieldStatus     = "status"
	FieldFees       = "fees"
	FieldReservedBy = "reserved_by"

	// ArgCurrentStatus binds the expected status in compare-and-set filters.
	ArgCurrentStatus = "current_status"

	DefaultFees = 200
)

const (
	HistoryTableName  = "visitor_room_reservations"
	HistoryEntityName = "visitor_room_reservation"

	FieldHistoryRoomID     = "room_id"
	FieldHistoryReservedAt = "reserved_at"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusReserved  Status = "Reserved"
)

func (s Status) IsValid() bool {
	return s == StatusAvailable || s == StatusReserved
}

type RoomType string

const (
	RoomTypeNormal   RoomType = "Normal Room"
	RoomTypeKidsArea RoomType = "Kids Area"
)

func (t RoomType) IsValid() bool {
	return t == RoomTypeNormal || t == RoomTypeKidsArea
}

type VisitorRoom struct {
	ID           string   `db:"id"`
	HospitalID   string   `db:"hospital_id"`
	HospitalName string   `db:"hospital_name" table:"hospitals" column:"name"`
	RoomNumber   string   `db:"room_number"`
	Capacity     int      `db:"capacity"`
	RoomType     RoomType `db:"room_type"`
	Status       Status   `db:"status"`
	Fees         float64  `db:"fees"`
	ReservedBy   *string  `db:"reserved_by"`
	model.Metadata
}

func (VisitorRoom) GetJoinQuery() string {
	return "JOIN hospitals ON hospitals.id = visitor_rooms.hospital_id"
}

// Reservation is one entry of a room's reservation history.
type Reservation struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	UserID     string    `db:"user_id"`
	UserName   *string   `db:"user_name" table:"users" column:"user_name"`
	TimeSlot   *string   `db:"time_slot"`
	ReservedAt time.Time `db:"reserved_at"`
}

func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = visitor_room_reservations.user_id"
}
