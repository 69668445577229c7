package model

import "hms/shared/model"

const (
	TableName  = "feedbacks"
	EntityName = "feedback"

	FieldID         = "id"
	FieldHospitalID = "hospital_id"
	FieldUserID     = "user_id"
	FieldRating     = "rating"
	FieldComment    = "comment"

	MinRating = 0
	MaxRating = 5
)

type Feedback struct {
	ID         string  `db:"id"`
	HospitalID string  `db:"hospital_id"`
	UserID     string  `db:"user_id"`
	UserName   *string `db:"author" table:"users" column:"user_name"`
	Rating     int     `db:"rating"`
	Comment    string  `db:"comment"`
	model.Metadata
}

func (Feedback) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = feedbacks.user_id"
}
