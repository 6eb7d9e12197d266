package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string              `bson:"name" json:"name"`
	RollNumber         string              `bson:"roll_number" json:"rollNumber"`
	RegistrationNumber string              `bson:"registration_number" json:"registrationNumber"`
	Year               int                 `bson:"year" json:"year"`
	Password           string              `bson:"password,omitempty" json:"-"`
	CounselorID        *primitive.ObjectID `bson:"counselor_id,omitempty" json:"counselorId,omitempty"`
	CreatedAt          time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updated_at" json:"updatedAt"`
}

// StudentWithCounselor is the response form of a student with the
// counselor_id reference expanded. Counselor stays nil when the reference
// is unset or dangling.
type StudentWithCounselor struct {
	Student   `bson:",inline"`
	Counselor *User `bson:"-" json:"counselor,omitempty"`
}
