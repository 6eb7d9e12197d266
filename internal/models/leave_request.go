package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveRequestPending is the status a leave request starts in. Transition
// logic lives outside this service.
const LeaveRequestPending = "pending"

type LeaveRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	StartDate *time.Time         `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time         `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Status    string             `bson:"status" json:"status"`
	StudentID primitive.ObjectID `bson:"student_id" json:"studentId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// LeaveRequestWithStudent is the response form with the student_id
// reference expanded.
type LeaveRequestWithStudent struct {
	LeaveRequest `bson:",inline"`
	Student      *Student `bson:"-" json:"student,omitempty"`
}
